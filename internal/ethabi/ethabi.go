// Package ethabi encodes values the way Solidity's abi.encode does, so they
// can be hashed and signed for Ethereum smart contracts.
package ethabi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var (
	uint256Type, _ = abi.NewType("uint256", "", nil)
	uint64Type, _  = abi.NewType("uint64", "", nil)
	stringType, _  = abi.NewType("string", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)
	bytes32Type, _ = abi.NewType("bytes32", "", nil)
	addressType, _ = abi.NewType("address", "", nil)
	boolType, _    = abi.NewType("bool", "", nil)
)

// Token is a single ABI value together with its Solidity type.
type Token struct {
	Type  abi.Type
	Value interface{}
}

// Uint returns a uint256 token. A nil value encodes as zero.
func Uint(v *big.Int) Token {
	if v == nil {
		v = new(big.Int)
	}
	return Token{Type: uint256Type, Value: v}
}

// Uint64 returns a uint64 token.
func Uint64(v uint64) Token { return Token{Type: uint64Type, Value: v} }

// String returns a string token.
func String(s string) Token { return Token{Type: stringType, Value: s} }

// Bytes returns a dynamic bytes token.
func Bytes(b []byte) Token { return Token{Type: bytesType, Value: b} }

// FixedBytes32 returns a bytes32 token.
func FixedBytes32(b [32]byte) Token { return Token{Type: bytes32Type, Value: b} }

// Address returns an address token.
func Address(addr common.Address) Token { return Token{Type: addressType, Value: addr} }

// Bool returns a bool token.
func Bool(b bool) Token { return Token{Type: boolType, Value: b} }

// Encoder is implemented by values that can be turned into a sequence of
// ABI tokens.
type Encoder interface {
	Tokenize() []Token
}

// AbiEncode is a plain token tuple, encoded as abi.encode(t[0], t[1], ...).
type AbiEncode []Token

func (t AbiEncode) Tokenize() []Token { return t }

// EncodeCell holds the ABI encoding of a value.
type EncodeCell struct {
	encoded []byte
}

// NewEncodeCell tokenizes and packs the value.
func NewEncodeCell(value Encoder) (EncodeCell, error) {
	tokens := value.Tokenize()

	args := make(abi.Arguments, len(tokens))
	values := make([]interface{}, len(tokens))
	for i, token := range tokens {
		args[i] = abi.Argument{Type: token.Type}
		values[i] = token.Value
	}

	bz, err := args.Pack(values...)
	if err != nil {
		return EncodeCell{}, errors.Wrap(err, "failed to abi encode tokens")
	}
	return EncodeCell{encoded: bz}, nil
}

// Bytes returns the encoded value.
func (c EncodeCell) Bytes() []byte {
	return c.encoded
}

// Keccak256 returns the keccak hash of the ABI encoding of value.
func Keccak256(value Encoder) (KeccakHash, error) {
	cell, err := NewEncodeCell(value)
	if err != nil {
		return KeccakHash{}, err
	}
	return HashBytes(cell.Bytes()), nil
}

// SignableKeccak256 returns the hash an Ethereum signer signs for the ABI
// encoding of value: keccak256("\x19Ethereum Signed Message:\n32" || keccak256(abi.encode(value))).
func SignableKeccak256(value Encoder) ([]byte, error) {
	hash, err := Keccak256(value)
	if err != nil {
		return nil, err
	}
	return accounts.TextHash(hash[:]), nil
}

// HashBytes returns the keccak hash of bz.
func HashBytes(bz []byte) KeccakHash {
	var hash KeccakHash
	copy(hash[:], crypto.Keccak256(bz))
	return hash
}
