package ethabi

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	tmbytes "github.com/tendermint/tendermint/libs/bytes"
)

// KeccakHash is a 32 byte keccak256 digest. Its string form is upper case hex.
type KeccakHash [32]byte

// ParseKeccakHash parses a hex encoded hash, with or without a 0x prefix and in
// either case.
func ParseKeccakHash(s string) (KeccakHash, error) {
	var hash KeccakHash

	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	bz, err := hex.DecodeString(s)
	if err != nil {
		return hash, errors.Wrapf(err, "invalid keccak hash %q", s)
	}
	if len(bz) != len(hash) {
		return hash, errors.Errorf("invalid keccak hash length: expected %d bytes, got %d", len(hash), len(bz))
	}

	copy(hash[:], bz)
	return hash, nil
}

func (h KeccakHash) String() string {
	return tmbytes.HexBytes(h[:]).String()
}

func (h KeccakHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *KeccakHash) UnmarshalText(text []byte) error {
	hash, err := ParseKeccakHash(string(text))
	if err != nil {
		return err
	}
	*h = hash
	return nil
}
