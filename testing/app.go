package ibctesting

import (
	"github.com/cosmos/cosmos-sdk/codec"

	clientkeeper "github.com/ibc-validity/ibc-vp/modules/core/02-client/keeper"
	"github.com/ibc-validity/ibc-vp/modules/core/keeper"
	ibctypes "github.com/ibc-validity/ibc-vp/modules/core/types"
)

// MakeTestCodec returns a codec with every client interface registered.
func MakeTestCodec() *codec.ProtoCodec {
	return ibctypes.MakeCodec()
}

// NewTestKeeper returns an ibc keeper routing to every client type shipped
// with the module.
func NewTestKeeper(cdc codec.ProtoCodecMarshaler, opts ...clientkeeper.Option) *keeper.Keeper {
	return keeper.NewKeeper(cdc, DefaultParams, opts...)
}
