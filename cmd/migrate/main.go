package main

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const versionTimeFormat = "20060102150405"

const defaultMigrationDir = "migrations"

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{Use: "migrate"}
	rootCmd.AddCommand(
		createMigrationCommand(),
		migrateUpCommand(),
		migrateDownCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func createMigrationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-create [name]",
		Short: "create a pair of empty SQL migration files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := time.Now().Format(versionTimeFormat)
			name := args[0]
			up := fmt.Sprintf("%s/%s_%s.up.sql", defaultMigrationDir, version, name)
			down := fmt.Sprintf("%s/%s_%s.down.sql", defaultMigrationDir, version, name)

			if err := os.WriteFile(up, []byte{}, 0644); err != nil {
				return err
			}
			if err := os.WriteFile(down, []byte{}, 0644); err != nil {
				return err
			}

			fmt.Println("Created SQL up script:", up)
			fmt.Println("Created SQL down script:", down)
			return nil
		},
	}
}

func migrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-up",
		Short: "migrate all the way up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMigrator()
			if err != nil {
				return err
			}
			err = m.Up()
			if err == migrate.ErrNoChange {
				fmt.Println("No change in migration")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println("Migrated up")
			return nil
		},
	}
}

func migrateDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-down",
		Short: "roll back one migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMigrator()
			if err != nil {
				return err
			}
			if err := m.Steps(-1); err != nil {
				return err
			}
			fmt.Println("Rolled back one migration")
			return nil
		},
	}
}

// The service database URL carries elevated rights; migrations need them
// for trigger and policy DDL.
func newMigrator() (*migrate.Migrate, error) {
	dsn := os.Getenv("SERVICE_DATABASE_URL")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return migrate.New("file://"+defaultMigrationDir, dsn)
}
