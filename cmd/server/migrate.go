package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/database"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withSQLDB(*configPath, func(run migrationRunner) error {
				return run.up()
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			return withSQLDB(*configPath, func(run migrationRunner) error {
				return run.down(steps)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}

type migrationRunner struct {
	up   func() error
	down func(steps int) error
}

func withSQLDB(configPath string, fn func(migrationRunner) error) error {
	cfg, logger, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, closeDB, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	return fn(migrationRunner{
		up:   func() error { return database.RunMigrations(sqlDB, logger) },
		down: func(steps int) error { return database.RollbackMigrations(sqlDB, steps, logger) },
	})
}
