package solomachine

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

var _ exported.LightClientModule = (*LightClientModule)(nil)

// LightClientModule implements the core IBC exported.LightClientModule interface
type LightClientModule struct {
	cdc codec.ProtoCodecMarshaler
}

// NewLightClientModule creates and returns a new 06-solomachine LightClientModule.
// The codec's interface registry must know the public key types solo machines
// sign with.
func NewLightClientModule(cdc codec.ProtoCodecMarshaler) LightClientModule {
	return LightClientModule{
		cdc: cdc,
	}
}

// ClientType returns the solo machine client type.
func (LightClientModule) ClientType() string {
	return exported.Solomachine
}

// CheckHeaderAndUpdateState decodes a solo machine header, verifies its
// signature with the current public key and returns the client and consensus
// state after the key rotation.
func (l LightClientModule) CheckHeaderAndUpdateState(
	_ exported.VerifyContext, clientState exported.ClientState, consensusState exported.ConsensusState, headerBz []byte,
) (exported.ClientState, exported.ConsensusState, error) {
	cs, ok := clientState.(*ClientState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &ClientState{}, clientState)
	}
	smConsState, ok := consensusState.(*ConsensusState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &ConsensusState{}, consensusState)
	}
	if cs.IsFrozen {
		return nil, nil, ErrClientFrozen
	}
	if err := cs.Validate(); err != nil {
		return nil, nil, sdkerrors.Wrap(err, "prior client state failed basic validation")
	}
	if err := cs.checkConsensusState(smConsState); err != nil {
		return nil, nil, err
	}

	var header Header
	if err := header.Unmarshal(headerBz); err != nil {
		return nil, nil, err
	}
	if err := codectypes.UnpackInterfaces(&header, l.cdc.InterfaceRegistry()); err != nil {
		return nil, nil, sdkerrors.Wrap(ErrInvalidHeader, err.Error())
	}

	if err := cs.verifyHeader(&header); err != nil {
		return nil, nil, err
	}

	newClientState, newConsensusState := cs.updateState(&header)
	return newClientState, newConsensusState, nil
}

// VerifyUpgradeAndUpdateState returns an error since solomachine client does not support upgrades
func (LightClientModule) VerifyUpgradeAndUpdateState(
	_ exported.VerifyContext, _ exported.ClientState, _ exported.ConsensusState, _, _ []byte,
) (exported.ClientState, exported.ConsensusState, error) {
	return nil, nil, sdkerrors.Wrap(ErrUpgradeNotSupported, "cannot upgrade solomachine client")
}
