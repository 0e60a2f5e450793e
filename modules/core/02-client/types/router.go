package types

import (
	"fmt"

	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// The router is a map from client type to the LightClientModule which verifies
// headers and upgrades of clients of that type. Once sealed no routes can be
// added, so a sealed router is safe for concurrent use.
type Router struct {
	routes map[string]exported.LightClientModule
	sealed bool
}

func NewRouter() *Router {
	return &Router{
		routes: make(map[string]exported.LightClientModule),
	}
}

// Seal prevents the Router from any subsequent route handlers to be registered.
// Seal will panic if called more than once.
func (rtr *Router) Seal() {
	if rtr.sealed {
		panic("router already sealed")
	}
	rtr.sealed = true
}

// Sealed returns a boolean signifying if the Router is sealed or not.
func (rtr Router) Sealed() bool {
	return rtr.sealed
}

// AddRoute adds LightClientModule for a given client type. It returns the Router
// so AddRoute calls can be linked. It will panic if the Router is sealed.
func (rtr *Router) AddRoute(clientType string, module exported.LightClientModule) *Router {
	if rtr.sealed {
		panic(fmt.Errorf("router sealed; cannot register %s route callbacks", clientType))
	}
	if err := ValidateClientType(clientType); err != nil {
		panic(err)
	}
	if module.ClientType() != clientType {
		panic(fmt.Errorf("light client module for %s cannot be registered under %s", module.ClientType(), clientType))
	}
	if rtr.HasRoute(clientType) {
		panic(fmt.Errorf("route %s has already been registered", clientType))
	}

	rtr.routes[clientType] = module
	return rtr
}

// HasRoute returns true if the Router has a module registered or false otherwise.
func (rtr *Router) HasRoute(clientType string) bool {
	_, ok := rtr.routes[clientType]
	return ok
}

// GetRoute returns a LightClientModule for a given client type.
func (rtr *Router) GetRoute(clientType string) (exported.LightClientModule, bool) {
	if !rtr.HasRoute(clientType) {
		return nil, false
	}
	return rtr.routes[clientType], true
}
