package ibctesting

import (
	"time"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
	ibctm "github.com/ibc-validity/ibc-vp/modules/light-clients/07-tendermint"
)

const (
	// ChainID is the revision formatted chain id of the default test counterparty.
	ChainID = "testchain0-1"

	// Default params used to create a TM client
	TrustingPeriod  time.Duration = time.Hour * 24 * 7 * 2
	UnbondingPeriod time.Duration = time.Hour * 24 * 7 * 3
	MaxClockDrift   time.Duration = time.Second * 10

	// DefaultSolomachineClientID is the default solo machine client id used for testing
	DefaultSolomachineClientID = "06-solomachine-0"
	// DefaultTendermintClientID is the default tendermint client id used for testing
	DefaultTendermintClientID = "07-tendermint-0"
	// DefaultMockClientID is the default mock client id used for testing
	DefaultMockClientID = "00-mock-0"
)

var (
	DefaultTrustLevel = ibctm.DefaultTrustLevel

	// DefaultParams routes every client type shipped with the module.
	DefaultParams = clienttypes.NewParams(clienttypes.DefaultMaxHeaders, exported.Mock, exported.Solomachine, exported.Tendermint)

	// DefaultBlockTime is the time of the block validated transactions are included in.
	DefaultBlockTime = time.Date(2022, time.January, 1, 12, 0, 0, 0, time.UTC)

	UpgradePath = ibctm.DefaultUpgradePath
)

type ClientConfig interface {
	GetClientType() string
}

type TendermintConfig struct {
	TrustLevel      ibctm.Fraction
	TrustingPeriod  time.Duration
	UnbondingPeriod time.Duration
	MaxClockDrift   time.Duration
	UpgradePath     []string
}

func NewTendermintConfig() *TendermintConfig {
	return &TendermintConfig{
		TrustLevel:      DefaultTrustLevel,
		TrustingPeriod:  TrustingPeriod,
		UnbondingPeriod: UnbondingPeriod,
		MaxClockDrift:   MaxClockDrift,
		UpgradePath:     UpgradePath,
	}
}

func (tmcfg *TendermintConfig) GetClientType() string {
	return exported.Tendermint
}
