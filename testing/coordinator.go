package ibctesting

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	ChainIDPrefix = "testchain"
	// to disable revision format, set ChainIDSuffix to ""
	ChainIDSuffix = "-1"
	TimeIncrement = time.Minute
)

// Coordinator is a testing struct which contains N TestChainTendermint's. It
// keeps all chains in sync with regards to time, so that headers of different
// counterparties can be verified at a single block time.
type Coordinator struct {
	*testing.T

	CurrentTime time.Time
	Chains      map[string]*TestChainTendermint
}

// NewCoordinator initializes Coordinator with N chains, with chain ids
// GetChainID(0) to GetChainID(n-1), whose first block is produced at startTime.
func NewCoordinator(t *testing.T, n int, startTime time.Time) *Coordinator {
	t.Helper()

	coord := &Coordinator{
		T:           t,
		CurrentTime: startTime.UTC(),
		Chains:      make(map[string]*TestChainTendermint),
	}
	for i := 0; i < n; i++ {
		chainID := GetChainID(i)
		coord.Chains[chainID] = NewTestChainTendermint(t, chainID, coord.CurrentTime)
	}
	coord.IncrementTime()

	return coord
}

// IncrementTime increments the current time of the coordinator and of every
// chain by TimeIncrement.
//
// CONTRACT: this function must be called after every NextBlock on any chain.
func (coord *Coordinator) IncrementTime() {
	coord.IncrementTimeBy(TimeIncrement)
}

// IncrementTimeBy increments the current time of the coordinator and of every
// chain by the specified duration.
func (coord *Coordinator) IncrementTimeBy(increment time.Duration) {
	coord.CurrentTime = coord.CurrentTime.Add(increment).UTC()
	coord.UpdateTime()
}

// UpdateTime updates all chain clocks to the current global time.
func (coord *Coordinator) UpdateTime() {
	for _, chain := range coord.Chains {
		coord.UpdateTimeForChain(chain)
	}
}

// UpdateTimeForChain sets the time of the next block of chain to the current
// global time.
func (coord *Coordinator) UpdateTimeForChain(chain *TestChainTendermint) {
	chain.CurrentTime = coord.CurrentTime
}

// GetChain returns the chain with the given chain id. It fails the test if it
// does not exist.
func (coord *Coordinator) GetChain(chainID string) *TestChainTendermint {
	chain, found := coord.Chains[chainID]
	require.True(coord.T, found, fmt.Sprintf("%s chain does not exist", chainID))
	return chain
}

// GetChainID returns the chainID used for the provided index.
func GetChainID(index int) string {
	return ChainIDPrefix + strconv.Itoa(index) + ChainIDSuffix
}

// CommitBlock commits a block on the provided chains and then increments the global time.
//
// CONTRACT: the passed in list of chains must not contain duplicates
func (coord *Coordinator) CommitBlock(chains ...*TestChainTendermint) {
	for _, chain := range chains {
		chain.NextBlock()
	}
	coord.IncrementTime()
}

// CommitNBlocks commits n blocks on chain, incrementing the global time after each one.
func (coord *Coordinator) CommitNBlocks(chain *TestChainTendermint, n uint64) {
	for i := uint64(0); i < n; i++ {
		chain.NextBlock()
		coord.IncrementTime()
	}
}
