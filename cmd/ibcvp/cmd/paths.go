package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
)

// PathsCmd prints the storage keys of a client.
func PathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths [client-id] [height]",
		Short: "Print the storage keys of a client",
		Long: `Print the storage keys of a client. The height is given as
{revision number}-{revision height} and selects the consensus state key.`,
		Example: "ibcvp paths 07-tendermint-0 1-10",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID := args[0]
			if err := host.ClientIdentifierValidator(clientID); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "client type:     %s\n", host.FullClientTypePath(clientID))
			fmt.Fprintf(out, "client state:    %s\n", host.FullClientStatePath(clientID))
			if len(args) == 2 {
				height, err := clienttypes.ParseHeight(args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "consensus state: %s\n", host.FullConsensusStatePath(clientID, height))
			}
			fmt.Fprintf(out, "client counter:  %s\n", host.ClientCounterPath())
			return nil
		},
	}
}
