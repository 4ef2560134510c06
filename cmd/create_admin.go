// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/canonical/ops-console/internal/password"
)

// createAdminCmd bootstraps the first admin account. Further users are
// managed through the console itself.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin user",
	Long:  `Create an admin user directly in the database, bootstrapping a fresh deployment`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")

		// Read the password from the environment, never from argv.
		plain := os.Getenv("ADMIN_PASSWORD")
		if plain == "" {
			return fmt.Errorf("ADMIN_PASSWORD environment variable is not set")
		}

		phc, err := password.Hash(password.Default, plain)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		config, err := pgx.ParseConfig(dsn)
		if err != nil {
			return fmt.Errorf("DSN validation failed: %v", err)
		}

		db := stdlib.OpenDB(*config)
		defer db.Close()

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate user ID: %w", err)
		}

		_, err = db.ExecContext(cmd.Context(),
			`INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, 'ADMIN')`,
			id.String(), name, email, phc,
		)
		if err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created admin user %s (%s)\n", email, id.String())
		return nil
	},
}

func init() {
	createAdminCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	createAdminCmd.Flags().String("name", "", "Display name of the admin user")
	createAdminCmd.Flags().String("email", "", "Email of the admin user")
	_ = createAdminCmd.MarkFlagRequired("dsn")
	_ = createAdminCmd.MarkFlagRequired("name")
	_ = createAdminCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(createAdminCmd)
}
