package cmd

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/ibc-validity/ibc-vp/internal/ethabi"
)

// AbiCmd groups the Ethereum ABI helpers.
func AbiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abi",
		Short: "Ethereum ABI encoding helpers",
	}
	cmd.AddCommand(abiEncodeCmd())
	return cmd
}

func abiEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [type:value]...",
		Short: "ABI encode a tuple of values and print its keccak hashes",
		Long: `ABI encode a tuple of values the way abi.encode does and print the
encoding, its keccak256 hash and the hash an Ethereum signer signs for it.

Supported types: uint (uint256), uint64, bool, string, bytes, bytes32 and
address. bytes and bytes32 values are hex encoded.`,
		Example: "ibcvp abi encode uint:42 string:test",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := make(ethabi.AbiEncode, len(args))
			for i, arg := range args {
				token, err := ParseToken(arg)
				if err != nil {
					return err
				}
				tokens[i] = token
			}

			cell, err := ethabi.NewEncodeCell(tokens)
			if err != nil {
				return err
			}
			hash, err := ethabi.Keccak256(tokens)
			if err != nil {
				return err
			}
			signable, err := ethabi.SignableKeccak256(tokens)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "encoded:  %s\n", hex.EncodeToString(cell.Bytes()))
			fmt.Fprintf(out, "keccak:   %s\n", hash)
			fmt.Fprintf(out, "signable: %s\n", hex.EncodeToString(signable))
			return nil
		},
	}
}

// ParseToken parses a {type}:{value} argument into an ABI token.
func ParseToken(arg string) (ethabi.Token, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 {
		return ethabi.Token{}, errors.Errorf("expected {type}:{value}, got %s", arg)
	}
	typ, value := parts[0], parts[1]

	switch typ {
	case "uint", "uint256":
		v, ok := new(big.Int).SetString(value, 0)
		if !ok || v.Sign() < 0 {
			return ethabi.Token{}, errors.Errorf("invalid uint256 %s", value)
		}
		return ethabi.Uint(v), nil
	case "uint64":
		v, err := cast.ToUint64E(value)
		if err != nil {
			return ethabi.Token{}, errors.Wrapf(err, "invalid uint64 %s", value)
		}
		return ethabi.Uint64(v), nil
	case "bool":
		v, err := cast.ToBoolE(value)
		if err != nil {
			return ethabi.Token{}, errors.Wrapf(err, "invalid bool %s", value)
		}
		return ethabi.Bool(v), nil
	case "string":
		return ethabi.String(value), nil
	case "bytes":
		bz, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
		if err != nil {
			return ethabi.Token{}, errors.Wrapf(err, "invalid bytes %s", value)
		}
		return ethabi.Bytes(bz), nil
	case "bytes32":
		bz, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
		if err != nil || len(bz) != 32 {
			return ethabi.Token{}, errors.Errorf("invalid bytes32 %s", value)
		}
		var word [32]byte
		copy(word[:], bz)
		return ethabi.FixedBytes32(word), nil
	case "address":
		if !common.IsHexAddress(value) {
			return ethabi.Token{}, errors.Errorf("invalid address %s", value)
		}
		return ethabi.Address(common.HexToAddress(value)), nil
	default:
		return ethabi.Token{}, errors.Errorf("unsupported abi type %s", typ)
	}
}
