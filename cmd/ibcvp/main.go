package main

import (
	"os"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/ibc-validity/ibc-vp/cmd/ibcvp/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.NewTMLogger(log.NewSyncWriter(rootCmd.ErrOrStderr())).Error("failure when running ibcvp", "err", err)
		os.Exit(1)
	}
}
