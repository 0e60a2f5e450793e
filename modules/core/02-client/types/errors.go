package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Codespace is the error codespace of the client validity predicate.
const Codespace = "ibc-client-vp"

// Error kinds returned by the client validity predicate. Every error it returns
// is classified as exactly one of them.
var (
	ErrInvalidKey          = sdkerrors.Register(Codespace, 2, "invalid client key")
	ErrStateChange         = sdkerrors.Register(Codespace, 3, "invalid client state change")
	ErrClient              = sdkerrors.Register(Codespace, 4, "client error")
	ErrHeader              = sdkerrors.Register(Codespace, 5, "header verification failed")
	ErrProofVerification   = sdkerrors.Register(Codespace, 6, "upgrade proof verification failed")
	ErrDecodingTxData      = sdkerrors.Register(Codespace, 7, "cannot decode tx data")
	ErrIBCData             = sdkerrors.Register(Codespace, 8, "invalid ibc data")
	ErrClientNotFound      = sdkerrors.Register(Codespace, 9, "client not found")
	ErrConsensusNotFound   = sdkerrors.Register(Codespace, 10, "consensus state not found")
	ErrInvalidClientType   = sdkerrors.Register(Codespace, 11, "invalid client type")
	ErrInvalidHeight       = sdkerrors.Register(Codespace, 12, "invalid height")
	ErrRouteNotFound       = sdkerrors.Register(Codespace, 13, "light client module route not found")
	ErrInvalidClientID     = sdkerrors.Register(Codespace, 14, "invalid client identifier")
	ErrClientTypeMismatch  = sdkerrors.Register(Codespace, 15, "client type mismatch")
	ErrInvalidTxData       = sdkerrors.Register(Codespace, 16, "invalid tx data")
	ErrCounterNotFound     = sdkerrors.Register(Codespace, 17, "client counter not found")
	ErrInvalidCounter      = sdkerrors.Register(Codespace, 18, "invalid client counter")
	ErrInvalidClient       = sdkerrors.Register(Codespace, 19, "invalid client state")
	ErrInvalidConsensus    = sdkerrors.Register(Codespace, 20, "invalid consensus state")
	ErrInvalidStateChange  = sdkerrors.Register(Codespace, 21, "state change is not allowed")
	ErrSnapshotUnavailable = sdkerrors.Register(Codespace, 22, "storage snapshot read failed")
)
