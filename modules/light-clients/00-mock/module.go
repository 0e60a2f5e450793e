package mock

import (
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

var _ exported.LightClientModule = (*LightClientModule)(nil)

// LightClientModule implements the core IBC exported.LightClientModule
// interface for the mock client. It holds no state.
type LightClientModule struct{}

// NewLightClientModule creates and returns a new mock LightClientModule.
func NewLightClientModule() LightClientModule {
	return LightClientModule{}
}

// ClientType returns the mock client type.
func (LightClientModule) ClientType() string {
	return ModuleName
}
