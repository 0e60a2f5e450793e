package types

import (
	"time"

	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// Context carries the environment of a single validity predicate invocation:
// the pre/post storage snapshot and the time of the block the transaction is
// included in. It is a value type and safe to share between goroutines as long
// as the snapshot is.
type Context struct {
	snapshot  exported.Snapshot
	blockTime time.Time
}

// NewContext creates a new Context.
func NewContext(snapshot exported.Snapshot, blockTime time.Time) Context {
	return Context{
		snapshot:  snapshot,
		blockTime: blockTime.UTC(),
	}
}

// Snapshot returns the pre/post storage snapshot.
func (c Context) Snapshot() exported.Snapshot { return c.snapshot }

// BlockTime returns the block time in UTC.
func (c Context) BlockTime() time.Time { return c.blockTime }

// WithBlockTime returns a copy of the context with the block time replaced.
func (c Context) WithBlockTime(blockTime time.Time) Context {
	c.blockTime = blockTime.UTC()
	return c
}

// WithSnapshot returns a copy of the context reading from snapshot.
func (c Context) WithSnapshot(snapshot exported.Snapshot) Context {
	c.snapshot = snapshot
	return c
}
