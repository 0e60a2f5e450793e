package solomachine

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ModuleName is the error codespace of the solo machine light client.
const ModuleName = "06-solomachine"

var (
	ErrInvalidHeader               = sdkerrors.Register(ModuleName, 2, "invalid header")
	ErrInvalidSequence             = sdkerrors.Register(ModuleName, 3, "invalid sequence")
	ErrSignatureVerificationFailed = sdkerrors.Register(ModuleName, 5, "signature verification failed")
	ErrClientFrozen                = sdkerrors.Register(ModuleName, 7, "solo machine client is frozen")
	ErrUpgradeNotSupported         = sdkerrors.Register(ModuleName, 8, "solo machine clients cannot be upgraded")
)
