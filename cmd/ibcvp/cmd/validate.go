package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"

	metrics "github.com/armon/go-metrics"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	clientkeeper "github.com/ibc-validity/ibc-vp/modules/core/02-client/keeper"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
	ibckeeper "github.com/ibc-validity/ibc-vp/modules/core/keeper"
	ibctypes "github.com/ibc-validity/ibc-vp/modules/core/types"
)

const (
	flagKey        = "key"
	flagClientID   = "client-id"
	flagTxData     = "tx-data"
	flagTxDataFile = "tx-data-file"
	flagMetrics    = "metrics"
)

// ValidateCmd validates the client changes of a transaction.
func ValidateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the IBC client changes made by a transaction",
		Long: `Validate the IBC client changes made by a transaction.

The client is selected with --key or --client-id. Without either, every client
with a changed key under the client store is validated. The command fails if
any client change is rejected or cannot be validated.`,
		Example: `ibcvp validate --snapshot tx.yaml --key ibc/clients/07-tendermint-0/clientState --tx-data 0a0f...
ibcvp validate --pre-db pre/state.db --post-db post/state.db --tx-data-file tx.bin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			txData, err := readTxData(v)
			if err != nil {
				return err
			}

			s, err := loadStorage(v, time.Now().UTC())
			if err != nil {
				return err
			}
			defer s.Close()

			opts := []clientkeeper.Option{clientkeeper.WithLogger(logger)}
			var sink *metrics.InmemSink
			if v.GetBool(flagMetrics) {
				sink = metrics.NewInmemSink(time.Minute, time.Minute)
				metricsCfg := metrics.DefaultConfig("ibcvp")
				metricsCfg.EnableHostname = false
				metricsCfg.EnableRuntimeMetrics = false
				m, err := metrics.New(metricsCfg, sink)
				if err != nil {
					return err
				}
				opts = append(opts, clientkeeper.WithMetrics(m))
			}
			k := ibckeeper.NewKeeper(ibctypes.MakeCodec(), cfg.Params, opts...)

			clientIDs, err := selectClients(v, s)
			if err != nil {
				return err
			}
			if len(clientIDs) == 0 {
				return errors.New("the transaction changed no client")
			}

			ctx := s.Context()
			out := cmd.OutOrStdout()
			failed := 0
			for _, clientID := range clientIDs {
				ok, err := k.ClientKeeper.ValidateClient(ctx, clientID, txData)
				if !printResult(out, clientID, ok, err) {
					failed++
				}
			}

			if sink != nil {
				printMetrics(out, sink)
			}

			if failed > 0 {
				return errors.Errorf("%d of %d client changes are invalid", failed, len(clientIDs))
			}
			return nil
		},
	}

	addStorageFlags(cmd.Flags())
	cmd.Flags().String(flagKey, "", "storage key changed by the transaction")
	cmd.Flags().String(flagClientID, "", "identifier of the client to validate")
	cmd.Flags().String(flagTxData, "", "hex encoded transaction data")
	cmd.Flags().String(flagTxDataFile, "", "file holding the raw transaction data")
	cmd.Flags().Bool(flagMetrics, false, "print the validation counters")

	return cmd
}

func readTxData(v *viper.Viper) ([]byte, error) {
	txData, txDataFile := v.GetString(flagTxData), v.GetString(flagTxDataFile)
	switch {
	case txData != "" && txDataFile != "":
		return nil, errors.Errorf("--%s cannot be used with --%s", flagTxData, flagTxDataFile)
	case txDataFile != "":
		return ioutil.ReadFile(txDataFile)
	default:
		bz, err := hex.DecodeString(strings.TrimPrefix(txData, "0x"))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --%s", flagTxData)
		}
		return bz, nil
	}
}

// selectClients returns the clients to validate: the one given by the flags,
// or every client owning a changed key.
func selectClients(v *viper.Viper, s *storage) ([]string, error) {
	key, clientID := v.GetString(flagKey), v.GetString(flagClientID)
	switch {
	case key != "" && clientID != "":
		return nil, errors.Errorf("--%s cannot be used with --%s", flagKey, flagClientID)
	case key != "":
		clientID, err := host.ParseClientIDFromKey(key)
		if err != nil {
			return nil, err
		}
		return []string{clientID}, nil
	case clientID != "":
		return []string{clientID}, nil
	}

	keys, err := ChangedKeys(s.pre, s.post)
	if err != nil {
		return nil, err
	}

	return ibckeeper.ChangedClients(keys), nil
}

// printResult reports the outcome of a single validation and returns whether
// the change was accepted.
func printResult(w io.Writer, clientID string, ok bool, err error) bool {
	switch {
	case err != nil:
		codespace, code, _ := sdkerrors.ABCIInfo(err, false)
		fmt.Fprintf(w, "%s: error (codespace: %s, code: %d): %s\n", clientID, codespace, code, err)
		return false
	case !ok:
		fmt.Fprintf(w, "%s: rejected\n", clientID)
		return false
	default:
		fmt.Fprintf(w, "%s: accepted\n", clientID)
		return true
	}
}

func printMetrics(w io.Writer, sink *metrics.InmemSink) {
	for _, interval := range sink.Data() {
		interval.RLock()
		for name, counter := range interval.Counters {
			fmt.Fprintf(w, "%s %d\n", name, counter.Count)
		}
		interval.RUnlock()
	}
}
