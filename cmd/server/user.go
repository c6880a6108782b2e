package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(userAddCmd())
	return cmd
}

func userAddCmd() *cobra.Command {
	var username, email, password, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user, typically the first admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			f, _, err := buildFleet(cfg)
			if err != nil {
				return err
			}

			user, err := f.User.Register(username, email, password, models.Role(role))
			if err != nil {
				return err
			}
			fmt.Printf("%s user %s (id %d, role %s)\n",
				color.New(color.FgGreen).Sprint("CREATED"), user.Username, user.ID, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().StringVar(&role, "role", string(models.RoleAdmin), "admin, engineer or technician")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
