package types

import (
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	dbm "github.com/tendermint/tm-db"

	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

var (
	_ exported.Snapshot = dbSnapshot{}
	_ exported.Snapshot = kvStoreSnapshot{}
)

// dbSnapshot implements exported.Snapshot over two tm-db databases holding the
// state before and after the transaction.
type dbSnapshot struct {
	pre  dbm.DB
	post dbm.DB
}

// NewDBSnapshot creates a snapshot reading pre state from pre and post state from post.
func NewDBSnapshot(pre, post dbm.DB) exported.Snapshot {
	return dbSnapshot{
		pre:  pre,
		post: post,
	}
}

func (s dbSnapshot) ReadPre(key []byte) ([]byte, error) {
	return readDB(s.pre, key)
}

func (s dbSnapshot) ReadPost(key []byte) ([]byte, error) {
	return readDB(s.post, key)
}

func readDB(db dbm.DB, key []byte) ([]byte, error) {
	bz, err := db.Get(key)
	if err != nil {
		return nil, sdkerrors.Wrapf(ErrSnapshotUnavailable, "key %s: %s", key, err)
	}
	return bz, nil
}

// kvStoreSnapshot implements exported.Snapshot over two cosmos-sdk KVStores.
type kvStoreSnapshot struct {
	pre  storetypes.KVStore
	post storetypes.KVStore
}

// NewKVStoreSnapshot creates a snapshot reading pre state from pre and post
// state from post. The stores may be prefix stores.
func NewKVStoreSnapshot(pre, post storetypes.KVStore) exported.Snapshot {
	return kvStoreSnapshot{
		pre:  pre,
		post: post,
	}
}

func (s kvStoreSnapshot) ReadPre(key []byte) ([]byte, error) {
	return readKVStore(s.pre, key)
}

func (s kvStoreSnapshot) ReadPost(key []byte) ([]byte, error) {
	return readKVStore(s.post, key)
}

// readKVStore converts the panics raised by KVStore implementations into errors.
func readKVStore(store storetypes.KVStore, key []byte) (bz []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			bz, err = nil, sdkerrors.Wrapf(ErrSnapshotUnavailable, "key %s: %v", key, r)
		}
	}()

	if len(key) == 0 {
		return nil, sdkerrors.Wrap(ErrSnapshotUnavailable, "key cannot be empty")
	}
	return store.Get(key), nil
}
