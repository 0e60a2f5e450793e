/*
Package tendermint implements a concrete ClientState, ConsensusState and
Header types for the Tendermint consensus light client.
This implementation is based off the ICS 07 specification
(https://github.com/cosmos/ibc/tree/main/spec/client/ics-007-tendermint-client)

Headers are verified with the tendermint light client verifier against the
consensus state trusted at the latest client height. Upgrades are verified with
ics23 membership proofs against the root of that same consensus state.
*/
package tendermint
