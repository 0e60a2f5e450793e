package keeper

import (
	"time"

	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

var _ exported.VerifyContext = verifyContext{}

// verifyContext is the view of a single validation handed to light client
// modules. Trusted consensus states come from the prior snapshot.
type verifyContext struct {
	keeper   Keeper
	ctx      types.Context
	clientID string
}

func (k Keeper) newVerifyContext(ctx types.Context, clientID string) verifyContext {
	return verifyContext{
		keeper:   k,
		ctx:      ctx,
		clientID: clientID,
	}
}

func (vc verifyContext) ClientID() string {
	return vc.clientID
}

func (vc verifyContext) BlockTime() time.Time {
	return vc.ctx.BlockTime()
}

func (vc verifyContext) GetTrustedConsensusState(height exported.Height) (exported.ConsensusState, error) {
	return vc.keeper.GetPriorConsensusState(vc.ctx, vc.clientID, height)
}
