package tendermint

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ModuleName is the client type and error codespace of the tendermint light client.
const ModuleName = "07-tendermint"

// IBC tendermint client sentinel errors
var (
	ErrInvalidChainID         = sdkerrors.Register(ModuleName, 2, "invalid chain-id")
	ErrInvalidTrustingPeriod  = sdkerrors.Register(ModuleName, 3, "invalid trusting period")
	ErrInvalidUnbondingPeriod = sdkerrors.Register(ModuleName, 4, "invalid unbonding period")
	ErrInvalidHeaderHeight    = sdkerrors.Register(ModuleName, 5, "invalid header height")
	ErrInvalidHeader          = sdkerrors.Register(ModuleName, 6, "invalid header")
	ErrInvalidMaxClockDrift   = sdkerrors.Register(ModuleName, 7, "invalid max clock drift")
	ErrTrustingPeriodExpired  = sdkerrors.Register(ModuleName, 11, "time since latest trusted state has passed the trusting period")
	ErrInvalidProofSpecs      = sdkerrors.Register(ModuleName, 13, "invalid proof specs")
	ErrInvalidValidatorSet    = sdkerrors.Register(ModuleName, 14, "invalid validator set")
	ErrInvalidTrustLevel      = sdkerrors.Register(ModuleName, 15, "invalid trust level")
	ErrClientFrozen           = sdkerrors.Register(ModuleName, 16, "tendermint client is frozen")
	ErrInvalidProof           = sdkerrors.Register(ModuleName, 17, "invalid upgrade proof")
	ErrInvalidUpgradeClient   = sdkerrors.Register(ModuleName, 18, "invalid upgrade client")
	ErrConsensusStateNotFound = sdkerrors.Register(ModuleName, 19, "trusted consensus state not found")
)
