package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables that override flags,
	// e.g. IBCVP_LOG_LEVEL.
	EnvPrefix = "IBCVP"

	flagConfig         = "config"
	flagLogLevel       = "log-level"
	flagLogFormat      = "log-format"
	flagMaxHeaders     = "max-headers"
	flagAllowedClients = "allowed-clients"
)

// NewRootCmd creates the ibcvp root command. Every subcommand reads its
// configuration from a dedicated viper instance: flags first, then IBCVP_
// environment variables, then the optional config file.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "ibcvp",
		Short: "IBC client validity predicate",
		Long: `ibcvp checks the changes a transaction made to IBC light clients.

It reads the storage before and after the transaction, either from a YAML
snapshot file or from two goleveldb databases, and replays the client
creation, update or upgrade carried by the transaction data.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initViper(cmd, v)
		},
	}

	defaults := DefaultConfig()
	rootCmd.PersistentFlags().String(flagConfig, "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String(flagLogLevel, defaults.LogLevel, "log level (debug, info, error or none)")
	rootCmd.PersistentFlags().String(flagLogFormat, defaults.LogFormat, "log format (plain or json)")
	rootCmd.PersistentFlags().Uint64(flagMaxHeaders, defaults.Params.MaxHeaders, "maximum number of headers in a client update")
	rootCmd.PersistentFlags().StringSlice(flagAllowedClients, defaults.Params.AllowedClients, "client types the predicate accepts")

	rootCmd.AddCommand(
		ValidateCmd(v),
		InspectCmd(v),
		PathsCmd(),
		AbiCmd(),
		VersionCmd(),
	)

	return rootCmd
}

// initViper binds the flags of cmd and loads the environment and config file.
func initViper(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile := v.GetString(flagConfig); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}
