package cmd

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
)

const (
	LogFormatPlain = "plain"
	LogFormatJSON  = "json"
)

// Config is the configuration shared by the ibcvp commands.
type Config struct {
	LogLevel  string
	LogFormat string
	Params    clienttypes.Params
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: LogFormatPlain,
		Params:    clienttypes.DefaultParams(),
	}
}

// LoadConfig reads the configuration out of v and validates it.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()

	if v.IsSet(flagLogLevel) {
		cfg.LogLevel = cast.ToString(v.Get(flagLogLevel))
	}
	if v.IsSet(flagLogFormat) {
		cfg.LogFormat = cast.ToString(v.Get(flagLogFormat))
	}
	if v.IsSet(flagMaxHeaders) {
		maxHeaders, err := cast.ToUint64E(v.Get(flagMaxHeaders))
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid %s", flagMaxHeaders)
		}
		cfg.Params.MaxHeaders = maxHeaders
	}
	if v.IsSet(flagAllowedClients) {
		allowedClients, err := cast.ToStringSliceE(v.Get(flagAllowedClients))
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid %s", flagAllowedClients)
		}
		cfg.Params.AllowedClients = splitList(allowedClients)
	}

	if err := cfg.Params.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid params")
	}
	return cfg, nil
}

// NewLogger returns a logger writing to w in the configured format, filtered
// to the configured level.
func (cfg Config) NewLogger(w io.Writer) (log.Logger, error) {
	var logger log.Logger
	switch cfg.LogFormat {
	case LogFormatPlain:
		logger = log.NewTMLogger(log.NewSyncWriter(w))
	case LogFormatJSON:
		logger = log.NewTMJSONLogger(log.NewSyncWriter(w))
	default:
		return nil, errors.Errorf("unsupported log format: %s", cfg.LogFormat)
	}

	option, err := log.AllowLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, option), nil
}

// splitList splits comma separated entries, as environment variables carry
// lists.
func splitList(entries []string) []string {
	var list []string
	for _, entry := range entries {
		for _, item := range strings.Split(entry, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
	}
	return list
}
