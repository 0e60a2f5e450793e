package keeper

import (
	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// The getters in this file read the state written by the transaction. They
// report a missing value, a failed read and an undecodable value alike as not
// found.

// GetClientType returns the client type stored for clientID after the
// transaction. A stored value that is not a valid client type is not found.
func (k Keeper) GetClientType(ctx types.Context, clientID string) (string, bool) {
	bz, err := ctx.Snapshot().ReadPost(host.FullClientTypeKey(clientID))
	if err != nil || len(bz) == 0 {
		return "", false
	}

	clientType := string(bz)
	if err := types.ValidateClientType(clientType); err != nil {
		k.Logger().Debug("invalid client type", "client-id", clientID, "error", err)
		return "", false
	}
	return clientType, true
}

// GetClientState returns the client state stored for clientID after the transaction.
func (k Keeper) GetClientState(ctx types.Context, clientID string) (exported.ClientState, bool) {
	bz, err := ctx.Snapshot().ReadPost(host.FullClientStateKey(clientID))
	if err != nil || len(bz) == 0 {
		return nil, false
	}

	clientState, err := types.UnmarshalClientState(k.cdc, bz)
	if err != nil {
		k.Logger().Debug("undecodable client state", "client-id", clientID, "error", err)
		return nil, false
	}
	return clientState, true
}

// GetClientConsensusState returns the consensus state stored for clientID at
// height after the transaction.
func (k Keeper) GetClientConsensusState(ctx types.Context, clientID string, height exported.Height) (exported.ConsensusState, bool) {
	bz, err := ctx.Snapshot().ReadPost(host.FullConsensusStateKey(clientID, height))
	if err != nil || len(bz) == 0 {
		return nil, false
	}

	consensusState, err := types.UnmarshalConsensusState(k.cdc, bz)
	if err != nil {
		k.Logger().Debug("undecodable consensus state", "client-id", clientID, "height", height, "error", err)
		return nil, false
	}
	return consensusState, true
}

// GetClientCounter returns the number of clients created after the
// transaction. A counter that is missing or cannot be decoded is logged and
// reported as an unavailable counter of value 0.
func (k Keeper) GetClientCounter(ctx types.Context) types.ClientCounter {
	bz, err := ctx.Snapshot().ReadPost(host.ClientCounterKey())
	switch {
	case err != nil:
		k.Logger().Error("reading the client counter failed", "error", err)
		return types.UnavailableClientCounter()
	case len(bz) == 0:
		k.Logger().Error("client counter doesn't exist")
		return types.UnavailableClientCounter()
	}

	counter, err := types.DecodeClientCounter(bz)
	if err != nil {
		k.Logger().Error("decoding the client counter failed", "error", err)
		return types.UnavailableClientCounter()
	}
	return types.NewClientCounter(counter)
}
