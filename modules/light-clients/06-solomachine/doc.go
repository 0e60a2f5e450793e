/*
Package solomachine implements a concrete LightClientModule, ClientState, ConsensusState
and Header types for the Solo Machine light client.
This implementation is based off the ICS 06 specification
(https://github.com/cosmos/ibc/tree/master/spec/client/ics-006-solo-machine-client)

A solo machine advances by signing, with its current key, over the key and
diversifier it rotates to. Every accepted header increments the sequence by
one, and the sequence doubles as the revision height of the client. Solo
machine clients cannot be upgraded.

Note that client identifiers are expected to be in the form: 06-solomachine-{N}.
*/
package solomachine
