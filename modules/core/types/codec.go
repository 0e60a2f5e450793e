package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	mock "github.com/ibc-validity/ibc-vp/modules/light-clients/00-mock"
	solomachine "github.com/ibc-validity/ibc-vp/modules/light-clients/06-solomachine"
	ibctm "github.com/ibc-validity/ibc-vp/modules/light-clients/07-tendermint"
)

// RegisterInterfaces registers the client interfaces and the states of every
// light client shipped with the module. Public keys carried by solo machine
// states need the crypto interfaces as well.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	cryptocodec.RegisterInterfaces(registry)
	clienttypes.RegisterInterfaces(registry)

	mock.RegisterInterfaces(registry)
	solomachine.RegisterInterfaces(registry)
	ibctm.RegisterInterfaces(registry)
}

// MakeCodec returns a codec with all interfaces registered.
func MakeCodec() *codec.ProtoCodec {
	registry := codectypes.NewInterfaceRegistry()
	RegisterInterfaces(registry)
	return codec.NewProtoCodec(registry)
}
