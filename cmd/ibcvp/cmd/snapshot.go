package cmd

import (
	"encoding/hex"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	dbm "github.com/tendermint/tm-db"
	"gopkg.in/yaml.v2"
)

// SnapshotFile is the YAML form of the storage a transaction ran against.
// Pre and Post map storage keys to hex encoded values; a key absent from a
// side is absent from that storage.
type SnapshotFile struct {
	// BlockTime is RFC 3339. The current time is used when it is empty.
	BlockTime string            `yaml:"block_time,omitempty"`
	Pre       map[string]string `yaml:"pre"`
	Post      map[string]string `yaml:"post"`
}

// ReadSnapshotFile parses the YAML snapshot at path.
func ReadSnapshotFile(path string) (*SnapshotFile, error) {
	bz, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file SnapshotFile
	if err := yaml.UnmarshalStrict(bz, &file); err != nil {
		return nil, errors.Wrapf(err, "failed to parse snapshot file %s", path)
	}
	return &file, nil
}

// WriteSnapshotFile writes file as YAML to path.
func WriteSnapshotFile(path string, file *SnapshotFile) error {
	bz, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, bz, 0o600)
}

// NewSnapshotFile dumps the content of both databases.
func NewSnapshotFile(pre, post dbm.DB, blockTime time.Time) (*SnapshotFile, error) {
	preValues, err := dumpDB(pre)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the pre storage")
	}
	postValues, err := dumpDB(post)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the post storage")
	}

	file := &SnapshotFile{Pre: preValues, Post: postValues}
	if !blockTime.IsZero() {
		file.BlockTime = blockTime.UTC().Format(time.RFC3339Nano)
	}
	return file, nil
}

// GetBlockTime returns the block time of the snapshot, or now if it has none.
func (file SnapshotFile) GetBlockTime(now time.Time) (time.Time, error) {
	if file.BlockTime == "" {
		return now, nil
	}
	blockTime, err := time.Parse(time.RFC3339Nano, file.BlockTime)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid block time")
	}
	return blockTime, nil
}

// DBs loads both sides into in-memory databases.
func (file SnapshotFile) DBs() (pre, post dbm.DB, err error) {
	if pre, err = loadDB(file.Pre); err != nil {
		return nil, nil, errors.Wrap(err, "invalid pre storage")
	}
	if post, err = loadDB(file.Post); err != nil {
		return nil, nil, errors.Wrap(err, "invalid post storage")
	}
	return pre, post, nil
}

func loadDB(values map[string]string) (dbm.DB, error) {
	db := dbm.NewMemDB()
	for key, value := range values {
		bz, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value of %s", key)
		}
		if err := db.Set([]byte(key), bz); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func dumpDB(db dbm.DB) (map[string]string, error) {
	iter, err := db.Iterator(nil, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	values := make(map[string]string)
	for ; iter.Valid(); iter.Next() {
		values[string(iter.Key())] = hex.EncodeToString(iter.Value())
	}
	return values, iter.Error()
}

// OpenLevelDBs opens two goleveldb databases, each given by the path of its
// .db directory.
func OpenLevelDBs(preDir, postDir string) (pre, post dbm.DB, err error) {
	if pre, err = openLevelDB(preDir); err != nil {
		return nil, nil, errors.Wrap(err, "failed to open the pre storage")
	}
	if post, err = openLevelDB(postDir); err != nil {
		pre.Close()
		return nil, nil, errors.Wrap(err, "failed to open the post storage")
	}
	return pre, post, nil
}

func openLevelDB(path string) (dbm.DB, error) {
	path = filepath.Clean(path)
	name := strings.TrimSuffix(filepath.Base(path), ".db")
	return dbm.NewGoLevelDB(name, filepath.Dir(path))
}

// ChangedKeys returns, in order, the keys whose value differs between pre and
// post, including keys present on one side only.
func ChangedKeys(pre, post dbm.DB) ([]string, error) {
	preValues, err := dumpDB(pre)
	if err != nil {
		return nil, err
	}
	postValues, err := dumpDB(post)
	if err != nil {
		return nil, err
	}

	var changed []string
	for key, value := range postValues {
		if preValue, ok := preValues[key]; !ok || preValue != value {
			changed = append(changed, key)
		}
	}
	for key := range preValues {
		if _, ok := postValues[key]; !ok {
			changed = append(changed, key)
		}
	}
	sort.Strings(changed)
	return changed, nil
}
