package types

import (
	"fmt"
	"strings"

	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// DefaultMaxHeaders bounds the number of headers a single update may carry.
const DefaultMaxHeaders uint64 = 64

// DefaultAllowedClients are the default clients for the AllowedClients parameter.
var DefaultAllowedClients = []string{exported.Solomachine, exported.Tendermint}

// Params defines the set of validity predicate parameters.
type Params struct {
	// MaxHeaders is the largest header sequence accepted in an update.
	MaxHeaders uint64 `json:"max_headers" yaml:"max_headers" mapstructure:"max_headers"`
	// AllowedClients is the list of client types the predicate routes to.
	AllowedClients []string `json:"allowed_clients" yaml:"allowed_clients" mapstructure:"allowed_clients"`
}

// NewParams creates a new parameter configuration for the ibc client validity predicate
func NewParams(maxHeaders uint64, allowedClients ...string) Params {
	return Params{
		MaxHeaders:     maxHeaders,
		AllowedClients: allowedClients,
	}
}

// DefaultParams is the default parameter configuration for the ibc client validity predicate.
func DefaultParams() Params {
	return NewParams(DefaultMaxHeaders, DefaultAllowedClients...)
}

// Validate all ibc client validity predicate parameters
func (p Params) Validate() error {
	if p.MaxHeaders == 0 {
		return fmt.Errorf("max headers must be positive")
	}
	return validateClients(p.AllowedClients)
}

// IsAllowedClient checks if the given client type is registered on the allowlist.
func (p Params) IsAllowedClient(clientType string) bool {
	for _, allowedClient := range p.AllowedClients {
		if allowedClient == clientType {
			return true
		}
	}
	return false
}

// validateClients checks that the given clients are not blank.
func validateClients(clients []string) error {
	for i, clientType := range clients {
		if strings.TrimSpace(clientType) == "" {
			return fmt.Errorf("client type %d cannot be blank", i)
		}
	}

	return nil
}
