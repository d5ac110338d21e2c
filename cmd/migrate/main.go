// Command migrate applies or rolls back the embedded schema migrations.
//
//	migrate up      apply every pending migration
//	migrate down    roll back the latest applied migration
//	migrate status  list migrations and when they were applied
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/swblog/starwars-api/internal/config"
	"github.com/swblog/starwars-api/internal/logging"
	"github.com/swblog/starwars-api/internal/repository/sqldb"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up|down|status")
		os.Exit(2)
	}

	cfg := config.Load()
	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		logging.Fatal().Err(err).Msg("configure logging")
	}

	db, err := sqldb.New(cfg.DatabaseURL, cfg.DBDriver)
	if err != nil {
		logging.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	migrator, err := sqldb.NewMigrator(db)
	if err != nil {
		logging.Fatal().Err(err).Msg("load migrations")
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "up":
		applied, err := migrator.Up(ctx)
		if err != nil {
			logging.Fatal().Err(err).Msg("migrate up")
		}
		if len(applied) == 0 {
			logging.Info().Msg("schema is up to date")
		}
		for _, m := range applied {
			logging.Info().Int("version", m.Version).Str("name", m.Name).Msg("applied")
		}
	case "down":
		reverted, err := migrator.Down(ctx)
		if err != nil {
			logging.Fatal().Err(err).Msg("migrate down")
		}
		if reverted == nil {
			logging.Info().Msg("nothing to roll back")
			return
		}
		logging.Info().Int("version", reverted.Version).Str("name", reverted.Name).Msg("rolled back")
	case "status":
		statuses, err := migrator.Status(ctx)
		if err != nil {
			logging.Fatal().Err(err).Msg("migrate status")
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tNAME\tAPPLIED AT")
		for _, s := range statuses {
			applied := "pending"
			if s.Applied {
				applied = s.AppliedAt
			}
			fmt.Fprintf(w, "%04d\t%s\t%s\n", s.Version, s.Name, applied)
		}
		_ = w.Flush()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
}
