package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "engine-maintenance",
		Short: "Engine health and maintenance service",
		Long: `Ingests engine cycle telemetry, scores failure risk with the loaded
sequence model, raises maintenance alerts and tracks maintenance work.
Without a subcommand the HTTP and gRPC servers are started.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(MigrateCmd())
	rootCmd.AddCommand(RescoreCmd())
	rootCmd.AddCommand(UserCmd())

	err := rootCmd.Execute()
	common.SyncLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
