package ibctesting

import (
	"errors"
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// ErrSnapshotRead is returned by ErrSnapshot reads.
var ErrSnapshotRead = errors.New("snapshot read failed")

// Snapshot builds the storage before and after a transaction in two in-memory
// databases.
type Snapshot struct {
	t   *testing.T
	cdc codec.BinaryCodec

	Pre  dbm.DB
	Post dbm.DB
}

// NewSnapshot returns an empty snapshot. States are encoded with cdc.
func NewSnapshot(t *testing.T, cdc codec.BinaryCodec) *Snapshot {
	t.Helper()
	return &Snapshot{
		t:    t,
		cdc:  cdc,
		Pre:  dbm.NewMemDB(),
		Post: dbm.NewMemDB(),
	}
}

// Store selects the pre or the post database of a Snapshot.
type Store int

const (
	Pre Store = iota
	Post
)

func (s *Snapshot) db(store Store) dbm.DB {
	if store == Pre {
		return s.Pre
	}
	return s.Post
}

// SetRaw writes value under key in the selected database.
func (s *Snapshot) SetRaw(store Store, key, value []byte) *Snapshot {
	require.NoError(s.t, s.db(store).Set(key, value))
	return s
}

// Delete removes key from the selected database.
func (s *Snapshot) Delete(store Store, key []byte) *Snapshot {
	require.NoError(s.t, s.db(store).Delete(key))
	return s
}

// SetClientType writes the client type of clientID.
func (s *Snapshot) SetClientType(store Store, clientID, clientType string) *Snapshot {
	return s.SetRaw(store, host.FullClientTypeKey(clientID), []byte(clientType))
}

// SetClientState writes the client state of clientID.
func (s *Snapshot) SetClientState(store Store, clientID string, clientState exported.ClientState) *Snapshot {
	bz, err := clienttypes.MarshalClientState(s.cdc, clientState)
	require.NoError(s.t, err)
	return s.SetRaw(store, host.FullClientStateKey(clientID), bz)
}

// SetConsensusState writes the consensus state of clientID at height.
func (s *Snapshot) SetConsensusState(store Store, clientID string, height exported.Height, consensusState exported.ConsensusState) *Snapshot {
	bz, err := clienttypes.MarshalConsensusState(s.cdc, consensusState)
	require.NoError(s.t, err)
	return s.SetRaw(store, host.FullConsensusStateKey(clientID, height), bz)
}

// SetClient writes the client type, the client state and the consensus state
// at the latest height of the client state, as a client creation does.
func (s *Snapshot) SetClient(store Store, clientID string, clientState exported.ClientState, consensusState exported.ConsensusState) *Snapshot {
	return s.SetClientType(store, clientID, clientState.ClientType()).
		SetClientState(store, clientID, clientState).
		SetConsensusState(store, clientID, clientState.GetLatestHeight(), consensusState)
}

// SetClientCounter writes the client counter.
func (s *Snapshot) SetClientCounter(store Store, counter uint64) *Snapshot {
	return s.SetRaw(store, host.ClientCounterKey(), clienttypes.EncodeClientCounter(counter))
}

// CopyPreToPost copies every key of the pre database into the post database.
func (s *Snapshot) CopyPreToPost() *Snapshot {
	iter, err := s.Pre.Iterator(nil, nil)
	require.NoError(s.t, err)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		require.NoError(s.t, s.Post.Set(iter.Key(), iter.Value()))
	}
	require.NoError(s.t, iter.Error())
	return s
}

// Snapshot returns the read-only view of both databases.
func (s *Snapshot) Snapshot() exported.Snapshot {
	return clienttypes.NewDBSnapshot(s.Pre, s.Post)
}

// Context returns a validation context reading from the snapshot at blockTime.
func (s *Snapshot) Context(blockTime time.Time) clienttypes.Context {
	return clienttypes.NewContext(s.Snapshot(), blockTime)
}

// ErrSnapshot is a snapshot whose reads fail. Reads of the side selected by
// FailPre/FailPost return ErrSnapshotRead, the other side reads from Snapshot.
type ErrSnapshot struct {
	exported.Snapshot

	FailPre  bool
	FailPost bool
}

func (s ErrSnapshot) ReadPre(key []byte) ([]byte, error) {
	if s.FailPre {
		return nil, ErrSnapshotRead
	}
	return s.Snapshot.ReadPre(key)
}

func (s ErrSnapshot) ReadPost(key []byte) ([]byte, error) {
	if s.FailPost {
		return nil, ErrSnapshotRead
	}
	return s.Snapshot.ReadPost(key)
}
