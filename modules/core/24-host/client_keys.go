package host

import (
	"fmt"

	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// KeyClientStorePrefix defines the storage key prefix for IBC clients. Every
// client key lives under "{ModuleName}/{KeyClientStorePrefix}".
var KeyClientStorePrefix = []byte("clients")

const (
	KeyClientType           = "clientType"
	KeyClientState          = "clientState"
	KeyConsensusStatePrefix = "consensusStates"
	KeyClientCounter        = "counter"
)

// ClientStorePath returns the path all client keys share: "ibc/clients".
func ClientStorePath() string {
	return fmt.Sprintf("%s/%s", exported.ModuleName, KeyClientStorePrefix)
}

// FullClientPath returns the full path of a specific client path in the format:
// "ibc/clients/{clientID}/{path}" as a string.
func FullClientPath(clientID string, path string) string {
	return fmt.Sprintf("%s/%s/%s", ClientStorePath(), clientID, path)
}

// FullClientKey returns the full path of specific client path in the format:
// "ibc/clients/{clientID}/{path}" as a byte array.
func FullClientKey(clientID string, path []byte) []byte {
	return []byte(FullClientPath(clientID, string(path)))
}

// ICS02
// The following paths are the keys to the store as defined in https://github.com/cosmos/ibc/tree/master/spec/core/ics-002-client-semantics#path-space

// FullClientTypePath takes a client identifier and returns a Path under which
// the client type of a particular client is stored.
func FullClientTypePath(clientID string) string {
	return FullClientPath(clientID, KeyClientType)
}

// FullClientTypeKey takes a client identifier and returns a Key under which
// the client type of a particular client is stored.
func FullClientTypeKey(clientID string) []byte {
	return FullClientKey(clientID, []byte(KeyClientType))
}

// FullClientStatePath takes a client identifier and returns a Path under which to store a
// particular client state
func FullClientStatePath(clientID string) string {
	return FullClientPath(clientID, KeyClientState)
}

// FullClientStateKey takes a client identifier and returns a Key under which to store a
// particular client state.
func FullClientStateKey(clientID string) []byte {
	return FullClientKey(clientID, []byte(KeyClientState))
}

// FullConsensusStatePath takes a client identifier and returns a Path under which to
// store the consensus state of a client.
func FullConsensusStatePath(clientID string, height exported.Height) string {
	return FullClientPath(clientID, ConsensusStatePath(height))
}

// FullConsensusStateKey returns the store key for the consensus state of a particular
// client.
func FullConsensusStateKey(clientID string, height exported.Height) []byte {
	return []byte(FullConsensusStatePath(clientID, height))
}

// ConsensusStatePath returns the suffix store key for the consensus state at a
// particular height: "consensusStates/{revision}/{height}".
func ConsensusStatePath(height exported.Height) string {
	return fmt.Sprintf("%s/%d/%d", KeyConsensusStatePrefix, height.GetRevisionNumber(), height.GetRevisionHeight())
}

// ClientCounterPath returns the path of the global client counter.
func ClientCounterPath() string {
	return fmt.Sprintf("%s/%s", ClientStorePath(), KeyClientCounter)
}

// ClientCounterKey returns the store key of the global client counter.
func ClientCounterKey() []byte {
	return []byte(ClientCounterPath())
}
