package mock

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ModuleName is the client type and error codespace of the mock light client.
const ModuleName = "00-mock"

var (
	ErrInvalidHeader  = sdkerrors.Register(ModuleName, 2, "invalid mock header")
	ErrClientFrozen   = sdkerrors.Register(ModuleName, 3, "mock client is frozen")
	ErrInvalidProof   = sdkerrors.Register(ModuleName, 4, "invalid mock upgrade proof")
	ErrInvalidUpgrade = sdkerrors.Register(ModuleName, 5, "invalid mock upgrade")
	ErrInvalidState   = sdkerrors.Register(ModuleName, 6, "invalid mock state")
)
