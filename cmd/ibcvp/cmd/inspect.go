package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
	ibckeeper "github.com/ibc-validity/ibc-vp/modules/core/keeper"
	ibctypes "github.com/ibc-validity/ibc-vp/modules/core/types"
)

// ClientView is what inspect reports about one side of the storage.
type ClientView struct {
	ClientType     string `yaml:"client_type,omitempty"`
	ClientState    string `yaml:"client_state,omitempty"`
	LatestHeight   string `yaml:"latest_height,omitempty"`
	ConsensusState string `yaml:"consensus_state,omitempty"`
	Error          string `yaml:"error,omitempty"`
}

// ClientReport is the output of inspect.
type ClientReport struct {
	ClientID      string     `yaml:"client_id"`
	StateChange   string     `yaml:"state_change"`
	PriorCounter  string     `yaml:"prior_counter"`
	ClientCounter string     `yaml:"client_counter"`
	Prior         ClientView `yaml:"prior"`
	Posterior     ClientView `yaml:"posterior"`
}

// InspectCmd prints the prior and posterior states of a client.
func InspectCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [client-id]",
		Short: "Print the prior and posterior states of a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID := args[0]
			if err := host.ClientIdentifierValidator(clientID); err != nil {
				return err
			}

			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}

			s, err := loadStorage(v, time.Now().UTC())
			if err != nil {
				return err
			}
			defer s.Close()

			k := ibckeeper.NewKeeper(ibctypes.MakeCodec(), cfg.Params).ClientKeeper
			ctx := s.Context()

			report := ClientReport{ClientID: clientID}

			if change, err := k.GetClientStateChange(ctx, clientID); err != nil {
				report.StateChange = err.Error()
			} else {
				report.StateChange = change.String()
			}

			if counter, err := k.GetPriorClientCounter(ctx); err != nil {
				report.PriorCounter = err.Error()
			} else {
				report.PriorCounter = fmt.Sprint(counter)
			}
			counter := k.GetClientCounter(ctx)
			report.ClientCounter = fmt.Sprintf("%d (%s)", counter.Value, counter.Status)

			if clientState, err := k.GetPriorClientState(ctx, clientID); err != nil {
				report.Prior.Error = err.Error()
			} else {
				report.Prior.ClientType = clientState.ClientType()
				report.Prior.ClientState = fmt.Sprint(clientState)
				report.Prior.LatestHeight = clientState.GetLatestHeight().String()
				if consensusState, err := k.GetPriorConsensusState(ctx, clientID, clientState.GetLatestHeight()); err != nil {
					report.Prior.Error = err.Error()
				} else {
					report.Prior.ConsensusState = fmt.Sprint(consensusState)
				}
			}

			report.Posterior.ClientType, _ = k.GetClientType(ctx, clientID)
			if clientState, found := k.GetClientState(ctx, clientID); found {
				report.Posterior.ClientState = fmt.Sprint(clientState)
				report.Posterior.LatestHeight = clientState.GetLatestHeight().String()
				if consensusState, found := k.GetClientConsensusState(ctx, clientID, clientState.GetLatestHeight()); found {
					report.Posterior.ConsensusState = fmt.Sprint(consensusState)
				} else {
					report.Posterior.Error = clienttypes.ErrConsensusNotFound.Error()
				}
			} else {
				report.Posterior.Error = clienttypes.ErrClientNotFound.Error()
			}

			bz, err := yaml.Marshal(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(bz)
			return err
		},
	}

	addStorageFlags(cmd.Flags())
	return cmd
}
