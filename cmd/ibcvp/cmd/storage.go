package cmd

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	dbm "github.com/tendermint/tm-db"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
)

const (
	flagSnapshot  = "snapshot"
	flagPreDB     = "pre-db"
	flagPostDB    = "post-db"
	flagBlockTime = "block-time"
)

// storage is the state a command validates or inspects.
type storage struct {
	pre       dbm.DB
	post      dbm.DB
	blockTime time.Time
}

func addStorageFlags(fs *pflag.FlagSet) {
	fs.String(flagSnapshot, "", "YAML snapshot of the storage before and after the transaction")
	fs.String(flagPreDB, "", "goleveldb directory holding the storage before the transaction")
	fs.String(flagPostDB, "", "goleveldb directory holding the storage after the transaction")
	fs.String(flagBlockTime, "", "RFC 3339 time of the block the transaction is included in (default: snapshot block time or now)")
}

// loadStorage opens the storage selected by the flags. The snapshot file and
// the databases are mutually exclusive.
func loadStorage(v *viper.Viper, now time.Time) (*storage, error) {
	var (
		s   storage
		err error
	)

	snapshotPath := v.GetString(flagSnapshot)
	preDir, postDir := v.GetString(flagPreDB), v.GetString(flagPostDB)
	s.blockTime = now

	switch {
	case snapshotPath != "" && (preDir != "" || postDir != ""):
		return nil, errors.Errorf("--%s cannot be used with --%s or --%s", flagSnapshot, flagPreDB, flagPostDB)
	case snapshotPath != "":
		file, err := ReadSnapshotFile(snapshotPath)
		if err != nil {
			return nil, err
		}
		if s.blockTime, err = file.GetBlockTime(now); err != nil {
			return nil, err
		}
		if s.pre, s.post, err = file.DBs(); err != nil {
			return nil, err
		}
	case preDir != "" && postDir != "":
		if s.pre, s.post, err = OpenLevelDBs(preDir, postDir); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("either --%s or both --%s and --%s are required", flagSnapshot, flagPreDB, flagPostDB)
	}

	if blockTime := v.GetString(flagBlockTime); blockTime != "" {
		if s.blockTime, err = time.Parse(time.RFC3339Nano, blockTime); err != nil {
			s.Close()
			return nil, errors.Wrapf(err, "invalid --%s", flagBlockTime)
		}
	}
	return &s, nil
}

func (s *storage) Context() clienttypes.Context {
	return clienttypes.NewContext(clienttypes.NewDBSnapshot(s.pre, s.post), s.blockTime)
}

func (s *storage) Close() error {
	if err := s.pre.Close(); err != nil {
		s.post.Close()
		return err
	}
	return s.post.Close()
}
