package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// Open migrates before returning.
			if _, err := openDB(cfg); err != nil {
				return err
			}
			fmt.Printf("%s schema is up to date (%s)\n", color.New(color.FgGreen).Sprint("OK"), cfg.DBType)
			return nil
		},
	}
}
