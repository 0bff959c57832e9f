// Command migrate applies the embedded goose SQL migrations.
//
// Usage:
//
//	migrate [-dir migrations] <up|down|status|version>
//
// The database DSN comes from the same configuration as the server
// (CONFIG_PATH / DB_* environment variables).
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/bablog/bablog-backend/internal/config"
	"github.com/bablog/bablog-backend/migrations"
)

func main() {
	dir := flag.String("dir", ".", "migration directory inside the embedded FS")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if flag.NArg() < 1 {
		logger.Error("missing goose command (up, down, status, version)")
		os.Exit(1)
	}
	command := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("set dialect", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := goose.RunContext(context.Background(), command, db, *dir, flag.Args()[1:]...); err != nil {
		logger.Error("migration failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("migration complete", slog.String("command", command))
}
