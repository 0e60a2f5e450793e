package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// verifyUpdateClient replays the headers of the payload on the client state
// and consensus state stored before the transaction and checks that the
// result is exactly what the transaction wrote.
func (k Keeper) verifyUpdateClient(ctx types.Context, clientID string, data *types.UpdateClientData) (bool, error) {
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

	// check the prior states
	prevClientState, err := k.GetPriorClientState(ctx, clientID)
	if err != nil {
		return false, err
	}
	prevConsensusState, err := k.GetPriorConsensusState(ctx, clientID, prevClientState.GetLatestHeight())
	if err != nil {
		return false, err
	}

	if err := k.checkHeaders(clientID, data); err != nil {
		return false, err
	}

	lightClientModule, found := k.getLightClientModule(clientState.ClientType())
	if !found {
		return false, newClientError(clientID, sdkerrors.Wrap(types.ErrRouteNotFound, clientState.ClientType()))
	}

	newClientState, newConsensusState, err := k.fold(ctx, clientID, lightClientModule, prevClientState, prevConsensusState, data.Headers)
	if err != nil {
		return false, err
	}

	return types.ClientStatesEqual(k.cdc, newClientState, clientState) &&
		types.ConsensusStatesEqual(k.cdc, newConsensusState, consensusState), nil
}

// checkHeaders validates the payload fields and bounds the number of headers a
// single update may carry.
func (k Keeper) checkHeaders(clientID string, data *types.UpdateClientData) error {
	if err := data.ValidateBasic(); err != nil {
		return newIBCDataError(clientID, err)
	}
	if uint64(len(data.Headers)) > k.params.MaxHeaders {
		return newIBCDataError(clientID, sdkerrors.Wrapf(
			types.ErrInvalidTxData, "%d headers exceed the maximum of %d", len(data.Headers), k.params.MaxHeaders,
		))
	}
	return nil
}

// fold applies the headers in order, each one to the states produced by the
// previous one, and stops at the first header the light client rejects.
func (k Keeper) fold(
	ctx types.Context, clientID string, lightClientModule exported.LightClientModule,
	clientState exported.ClientState, consensusState exported.ConsensusState, headers [][]byte,
) (exported.ClientState, exported.ConsensusState, error) {
	vctx := k.newVerifyContext(ctx, clientID)

	for i, header := range headers {
		newClientState, newConsensusState, err := lightClientModule.CheckHeaderAndUpdateState(vctx, clientState, consensusState, header)
		if err != nil {
			return nil, nil, newHeaderError(clientID, i, err)
		}
		if newClientState == nil || newConsensusState == nil {
			return nil, nil, newHeaderError(clientID, i, sdkerrors.Wrap(types.ErrInvalidClient, "light client returned no state"))
		}

		clientState, consensusState = newClientState, newConsensusState
		k.Logger().Debug("header applied", "client-id", clientID, "header", i, "height", clientState.GetLatestHeight())
	}

	return clientState, consensusState, nil
}
