package keeper

import (
	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
)

// GetClientStateChange classifies the change the transaction made to the client
// state key of clientID by comparing its existence before and after.
func (k Keeper) GetClientStateChange(ctx types.Context, clientID string) (types.StateChange, error) {
	key := host.FullClientStateKey(clientID)

	pre, err := ctx.Snapshot().ReadPre(key)
	if err != nil {
		return types.NotExists, newStateChangeError(clientID, err)
	}
	post, err := ctx.Snapshot().ReadPost(key)
	if err != nil {
		return types.NotExists, newStateChangeError(clientID, err)
	}

	return types.NewStateChange(len(pre) != 0, len(post) != 0), nil
}
