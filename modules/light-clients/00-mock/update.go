package mock

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// CheckHeaderAndUpdateState decodes a mock header and advances the client to
// its height. The header must be above the latest height and must not move
// time backwards.
func (LightClientModule) CheckHeaderAndUpdateState(
	_ exported.VerifyContext, clientState exported.ClientState, consensusState exported.ConsensusState, header []byte,
) (exported.ClientState, exported.ConsensusState, error) {
	cs, ok := clientState.(*ClientState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &ClientState{}, clientState)
	}
	consState, ok := consensusState.(*ConsensusState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &ConsensusState{}, consensusState)
	}
	if cs.Frozen {
		return nil, nil, ErrClientFrozen
	}
	if err := cs.Validate(); err != nil {
		return nil, nil, sdkerrors.Wrap(err, "prior client state failed basic validation")
	}

	var mockHeader Header
	if err := mockHeader.Unmarshal(header); err != nil {
		return nil, nil, err
	}
	if err := mockHeader.ValidateBasic(); err != nil {
		return nil, nil, err
	}

	if mockHeader.Height.LTE(cs.LatestHeight) {
		return nil, nil, sdkerrors.Wrapf(
			ErrInvalidHeader, "header height %s must be greater than latest height %s", mockHeader.Height, cs.LatestHeight,
		)
	}
	if mockHeader.Timestamp < consState.Timestamp {
		return nil, nil, sdkerrors.Wrapf(
			ErrInvalidHeader, "header timestamp %d is before consensus timestamp %d", mockHeader.Timestamp, consState.Timestamp,
		)
	}

	newClientState := &ClientState{LatestHeight: mockHeader.Height}
	newConsensusState := &ConsensusState{Timestamp: mockHeader.Timestamp}

	return newClientState, newConsensusState, nil
}
