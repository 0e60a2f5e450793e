package keeper

import (
	"fmt"

	metrics "github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// Keeper represents the client validity predicate. It never writes state: every
// read goes through the snapshot of the Context it is given.
type Keeper struct {
	cdc     codec.BinaryCodec
	router  *types.Router
	params  types.Params
	logger  log.Logger
	metrics *metrics.Metrics
}

// Option configures optional Keeper dependencies.
type Option func(*Keeper)

// WithLogger sets the logger the keeper reports to. It defaults to a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(k *Keeper) {
		k.logger = logger
	}
}

// WithMetrics sets the metrics instance validation outcomes are counted on.
// Without it no metrics are emitted.
func WithMetrics(m *metrics.Metrics) Option {
	return func(k *Keeper) {
		k.metrics = m
	}
}

// NewKeeper creates a new client validity predicate Keeper instance. The router
// is sealed if it is not already. It panics if the params are invalid.
func NewKeeper(cdc codec.BinaryCodec, router *types.Router, params types.Params, opts ...Option) Keeper {
	if router == nil {
		panic("light client router cannot be nil")
	}
	if err := params.Validate(); err != nil {
		panic(fmt.Errorf("invalid client validity predicate params: %w", err))
	}
	if !router.Sealed() {
		router.Seal()
	}

	k := Keeper{
		cdc:    cdc,
		router: router,
		params: params,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&k)
	}
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", "x/"+exported.ModuleName+"/"+types.ModuleName)
}

// GetParams returns the params the keeper was built with.
func (k Keeper) GetParams() types.Params {
	return k.params
}

// Codec returns the codec client and consensus states are decoded with.
func (k Keeper) Codec() codec.BinaryCodec {
	return k.cdc
}

// getLightClientModule returns the light client module for an allowed client type.
func (k Keeper) getLightClientModule(clientType string) (exported.LightClientModule, bool) {
	if !k.params.IsAllowedClient(clientType) {
		return nil, false
	}
	return k.router.GetRoute(clientType)
}
