package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// GetPriorClientState returns the client state of clientID before the
// transaction. Unlike the posterior getters a missing or undecodable state is
// an error.
func (k Keeper) GetPriorClientState(ctx types.Context, clientID string) (exported.ClientState, error) {
	bz, err := ctx.Snapshot().ReadPre(host.FullClientStateKey(clientID))
	if err != nil {
		return nil, newClientError(clientID, err)
	}
	if len(bz) == 0 {
		return nil, newClientError(clientID, sdkerrors.Wrap(types.ErrClientNotFound, "the prior client state doesn't exist"))
	}

	clientState, err := types.UnmarshalClientState(k.cdc, bz)
	if err != nil {
		return nil, newClientError(clientID, sdkerrors.Wrap(err, "decoding the prior client state failed"))
	}
	return clientState, nil
}

// GetPriorConsensusState returns the consensus state of clientID at height
// before the transaction.
func (k Keeper) GetPriorConsensusState(ctx types.Context, clientID string, height exported.Height) (exported.ConsensusState, error) {
	bz, err := ctx.Snapshot().ReadPre(host.FullConsensusStateKey(clientID, height))
	if err != nil {
		return nil, newConsensusError(clientID, height, err)
	}
	if len(bz) == 0 {
		return nil, newConsensusError(clientID, height, sdkerrors.Wrap(types.ErrConsensusNotFound, "the prior consensus state doesn't exist"))
	}

	consensusState, err := types.UnmarshalConsensusState(k.cdc, bz)
	if err != nil {
		return nil, newConsensusError(clientID, height, sdkerrors.Wrap(err, "decoding the prior consensus state failed"))
	}
	return consensusState, nil
}

// GetPriorClientCounter returns the number of clients created before the
// transaction.
func (k Keeper) GetPriorClientCounter(ctx types.Context) (uint64, error) {
	bz, err := ctx.Snapshot().ReadPre(host.ClientCounterKey())
	if err != nil {
		return 0, newClientError("", err)
	}
	if len(bz) == 0 {
		return 0, newClientError("", sdkerrors.Wrap(types.ErrCounterNotFound, "the prior client counter doesn't exist"))
	}

	counter, err := types.DecodeClientCounter(bz)
	if err != nil {
		return 0, newClientError("", sdkerrors.Wrap(err, "decoding the prior client counter failed"))
	}
	return counter, nil
}
