package keeper

import (
	"github.com/cosmos/cosmos-sdk/codec"

	clientkeeper "github.com/ibc-validity/ibc-vp/modules/core/02-client/keeper"
	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
	mock "github.com/ibc-validity/ibc-vp/modules/light-clients/00-mock"
	solomachine "github.com/ibc-validity/ibc-vp/modules/light-clients/06-solomachine"
	ibctm "github.com/ibc-validity/ibc-vp/modules/light-clients/07-tendermint"
)

// Keeper defines the IBC validity predicates. Only the client predicate exists
// so far.
type Keeper struct {
	ClientKeeper clientkeeper.Keeper

	cdc codec.ProtoCodecMarshaler
}

// NewKeeper creates a new ibc Keeper with every light client shipped with the
// module routed. Client types outside params.AllowedClients stay unreachable.
func NewKeeper(cdc codec.ProtoCodecMarshaler, params clienttypes.Params, opts ...clientkeeper.Option) *Keeper {
	return &Keeper{
		ClientKeeper: clientkeeper.NewKeeper(cdc, NewRouter(cdc), params, opts...),
		cdc:          cdc,
	}
}

// NewRouter returns an unsealed router holding the mock, solo machine and
// tendermint light client modules.
func NewRouter(cdc codec.ProtoCodecMarshaler) *clienttypes.Router {
	router := clienttypes.NewRouter()
	router.AddRoute(mock.ModuleName, mock.NewLightClientModule()).
		AddRoute(solomachine.ModuleName, solomachine.NewLightClientModule(cdc)).
		AddRoute(ibctm.ModuleName, ibctm.NewLightClientModule(cdc))
	return router
}

// Codec returns the IBC module codec.
func (k *Keeper) Codec() codec.ProtoCodecMarshaler {
	return k.cdc
}

// ChangedClients returns, in order of first appearance, the identifiers of the
// clients owning the given storage keys. Keys outside the client store and the
// client counter key are skipped.
func ChangedClients(keys []string) []string {
	var clientIDs []string
	seen := make(map[string]bool)
	for _, key := range keys {
		if host.IsClientCounterKey(key) {
			continue
		}
		clientID, err := host.ParseClientIDFromKey(key)
		if err != nil {
			continue
		}
		if !seen[clientID] {
			seen[clientID] = true
			clientIDs = append(clientIDs, clientID)
		}
	}
	return clientIDs
}

// ValidateTx validates every client owning one of the keys the transaction
// changed. It stops at the first client that is rejected or fails to validate.
func (k *Keeper) ValidateTx(ctx clienttypes.Context, keysChanged []string, txData []byte) (bool, error) {
	for _, clientID := range ChangedClients(keysChanged) {
		ok, err := k.ClientKeeper.ValidateClient(ctx, clientID, txData)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
