package exported

import (
	"time"

	proto "github.com/gogo/protobuf/proto"
)

const (
	// ModuleName is the name of the IBC module as it appears in storage paths and logs.
	ModuleName = "ibc"

	// Mock is used to indicate that the client is a mock light client. It
	// verifies nothing beyond height monotonicity and is meant for testing.
	Mock string = "00-mock"

	// Solomachine is used to indicate that the light client is a solo machine.
	Solomachine string = "06-solomachine"

	// Tendermint is used to indicate that the client uses the Tendermint Consensus Algorithm.
	Tendermint string = "07-tendermint"
)

// ClientState defines the required common functions for light clients.
type ClientState interface {
	proto.Message

	ClientType() string
	GetLatestHeight() Height
	Validate() error
}

// ConsensusState is the state of the consensus process
type ConsensusState interface {
	proto.Message

	ClientType() string // Consensus kind

	// GetTimestamp returns the timestamp (in nanoseconds) of the consensus state
	GetTimestamp() uint64

	ValidateBasic() error
}

// Height is a wrapper interface over clienttypes.Height
// all clients must use the concrete implementation in types
type Height interface {
	IsZero() bool
	LT(Height) bool
	LTE(Height) bool
	EQ(Height) bool
	GT(Height) bool
	GTE(Height) bool
	GetRevisionNumber() uint64
	GetRevisionHeight() uint64
	Increment() Height
	Decrement() (Height, bool)
	String() string
}

// VerifyContext is the read-only view of the transaction environment a light
// client is given while verifying headers and upgrades.
type VerifyContext interface {
	// ClientID is the identifier of the client being verified.
	ClientID() string

	// BlockTime is the time of the block the transaction is included in.
	BlockTime() time.Time

	// GetTrustedConsensusState returns the consensus state stored for the
	// client at height before the transaction executed.
	GetTrustedConsensusState(height Height) (ConsensusState, error)
}

// LightClientModule is the per client type verification logic. Implementations
// must be pure: they never write state and return new values instead of
// mutating their arguments.
type LightClientModule interface {
	// ClientType returns the client type handled by the module.
	ClientType() string

	// CheckHeaderAndUpdateState verifies a single encoded header against the
	// trusted client and consensus states and returns the states that result
	// from applying it.
	CheckHeaderAndUpdateState(
		ctx VerifyContext,
		clientState ClientState,
		consensusState ConsensusState,
		header []byte,
	) (ClientState, ConsensusState, error)

	// VerifyUpgradeAndUpdateState verifies that the counterparty committed to
	// upgradedConsState and to an upgraded client state at the trusted height,
	// and returns the client state the local client must upgrade to.
	VerifyUpgradeAndUpdateState(
		ctx VerifyContext,
		clientState ClientState,
		upgradedConsState ConsensusState,
		proofUpgradeClient, proofUpgradeConsState []byte,
	) (ClientState, ConsensusState, error)
}
