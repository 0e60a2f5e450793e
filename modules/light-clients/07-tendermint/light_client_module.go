package tendermint

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

var _ exported.LightClientModule = (*LightClientModule)(nil)

// LightClientModule implements the core IBC exported.LightClientModule interface.
type LightClientModule struct {
	cdc codec.BinaryCodec
}

// NewLightClientModule creates and returns a new 07-tendermint LightClientModule.
func NewLightClientModule(cdc codec.BinaryCodec) LightClientModule {
	return LightClientModule{
		cdc: cdc,
	}
}

// ClientType returns the tendermint client type.
func (LightClientModule) ClientType() string {
	return exported.Tendermint
}

// CheckHeaderAndUpdateState decodes a tendermint header and verifies it against
// the consensus state trusted at the latest client height, using the block
// time of the verify context as the current time.
func (LightClientModule) CheckHeaderAndUpdateState(
	ctx exported.VerifyContext, clientState exported.ClientState, consensusState exported.ConsensusState, headerBz []byte,
) (exported.ClientState, exported.ConsensusState, error) {
	cs, ok := clientState.(*ClientState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &ClientState{}, clientState)
	}
	tmConsState, ok := consensusState.(*ConsensusState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &ConsensusState{}, consensusState)
	}
	if err := cs.Validate(); err != nil {
		return nil, nil, sdkerrors.Wrap(err, "prior client state failed basic validation")
	}

	var header Header
	if err := header.Unmarshal(headerBz); err != nil {
		return nil, nil, err
	}

	newClientState, newConsensusState, err := cs.checkHeaderAndUpdateState(ctx.BlockTime(), tmConsState, &header)
	if err != nil {
		return nil, nil, err
	}
	return newClientState, newConsensusState, nil
}

// VerifyUpgradeAndUpdateState verifies the upgrade proofs against the root of
// the consensus state stored before the transaction at the latest client
// height, and returns the upgraded client and consensus state.
func (l LightClientModule) VerifyUpgradeAndUpdateState(
	ctx exported.VerifyContext, clientState exported.ClientState, upgradedConsState exported.ConsensusState,
	proofUpgradeClient, proofUpgradeConsState []byte,
) (exported.ClientState, exported.ConsensusState, error) {
	cs, ok := clientState.(*ClientState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &ClientState{}, clientState)
	}
	tmUpgradeConsState, ok := upgradedConsState.(*ConsensusState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidConsensus, "upgraded consensus state must be Tendermint consensus state. expected %T, got: %T",
			&ConsensusState{}, upgradedConsState)
	}
	// the client state was read from storage without validation and ics23 panics on degenerate proof specs
	if err := cs.Validate(); err != nil {
		return nil, nil, sdkerrors.Wrap(err, "prior client state failed basic validation")
	}

	// Must prove against latest consensus state to ensure we are verifying against latest upgrade plan
	// This verifies that upgrade is intended for the provided revision, since committed client must exist
	// at this consensus state
	trusted, err := ctx.GetTrustedConsensusState(cs.LatestHeight)
	if err != nil {
		return nil, nil, sdkerrors.Wrapf(ErrConsensusStateNotFound, "could not retrieve consensus state for height %s: %v", cs.LatestHeight, err)
	}
	consState, ok := trusted.(*ConsensusState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &ConsensusState{}, trusted)
	}

	newClientState, newConsState, err := cs.verifyUpgradeAndUpdateState(
		l.cdc, consState, tmUpgradeConsState, proofUpgradeClient, proofUpgradeConsState,
	)
	if err != nil {
		return nil, nil, err
	}
	return newClientState, newConsState, nil
}
