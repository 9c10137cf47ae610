package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"library-lending/config"
	"library-lending/pkg/log"
)

// adminEnv carries the shared dependencies of every subcommand.
type adminEnv struct {
	cfg *config.Config
	db  *sql.DB
	l   log.Logger
}

func openEnv() (*adminEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("reach postgres: %w", err)
	}

	return &adminEnv{cfg: cfg, db: db, l: logger}, nil
}

func (e *adminEnv) close() {
	if e.db != nil {
		e.db.Close()
	}
}

func main() {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Administrative tooling for the library lending service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInitAdminCmd())
	root.AddCommand(newImportMembersCmd())
	root.AddCommand(newSeedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
