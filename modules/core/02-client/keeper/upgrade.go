package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
)

// verifyUpgradeClient checks the upgrade proofs of the payload against the
// client state stored before the transaction and checks that the upgraded
// states are exactly what the transaction wrote.
func (k Keeper) verifyUpgradeClient(ctx types.Context, clientID string, data *types.UpgradeClientData) (bool, error) {
	if err := checkClientID(clientID, data.ClientId); err != nil {
		return false, err
	}

	// check the posterior states
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return false, newClientError(clientID, sdkerrors.Wrap(types.ErrClientNotFound, "the client state doesn't exist"))
	}
	height := clientState.GetLatestHeight()
	consensusState, found := k.GetClientConsensusState(ctx, clientID, height)
	if !found {
		return false, newConsensusError(clientID, height, sdkerrors.Wrap(types.ErrConsensusNotFound, "the consensus state doesn't exist"))
	}

	// check the prior client state
	prevClientState, err := k.GetPriorClientState(ctx, clientID)
	if err != nil {
		return false, err
	}

	if err := data.ValidateBasic(); err != nil {
		return false, newIBCDataError(clientID, err)
	}

	lightClientModule, found := k.getLightClientModule(clientState.ClientType())
	if !found {
		return false, newClientError(clientID, sdkerrors.Wrap(types.ErrRouteNotFound, clientState.ClientType()))
	}

	newClientState, newConsensusState, err := lightClientModule.VerifyUpgradeAndUpdateState(
		k.newVerifyContext(ctx, clientID), prevClientState, consensusState,
		data.ProofUpgradeClient, data.ProofUpgradeConsensusState,
	)
	if err != nil {
		return false, newProofVerificationError(clientID, err)
	}
	if newClientState == nil || newConsensusState == nil {
		return false, newProofVerificationError(clientID, sdkerrors.Wrap(types.ErrInvalidClient, "light client returned no state"))
	}

	k.Logger().Debug("upgrade verified", "client-id", clientID, "height", newClientState.GetLatestHeight())

	return types.ClientStatesEqual(k.cdc, newClientState, clientState) &&
		types.ConsensusStatesEqual(k.cdc, newConsensusState, consensusState), nil
}
