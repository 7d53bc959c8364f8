package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := buildRootCmd().Execute(); err != nil {
		log.Errorf("liftlogctl: %s", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "liftlogctl",
		Short:         "Admin tooling for the liftlog service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		buildHashPasswordCmd(),
		buildMigrateCmd(),
		buildEvaluateCmd(),
	)
	return rootCmd
}
