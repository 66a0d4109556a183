package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/jewelerp/backend/internal/infrastructure/config"
	"github.com/jewelerp/backend/internal/infrastructure/logger"
	"github.com/jewelerp/backend/internal/infrastructure/migration"
)

const usage = `Usage: migrate [-path dir] <command>

Commands:
  up                 Apply all pending migrations
  down               Roll back all migrations
  step <n>           Apply n migrations (negative rolls back)
  version            Print the current schema version
  force <version>    Force the schema version without running migrations
  create <name>      Create a new migration file pair
  list               List known migration files
`

func main() {
	path := flag.String("path", "migrations", "migrations directory")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := logger.New(&logger.Config{Level: *logLevel, Format: "console", Output: "stderr"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(flag.Args(), *path, log); err != nil {
		log.Error("migration failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(args []string, path string, log *zap.Logger) error {
	command := args[0]

	// create and list operate on files only, no database needed
	switch command {
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("create requires a migration name")
		}
		mf, err := migration.CreateMigration(path, args[1])
		if err != nil {
			return err
		}
		log.Info("migration created", zap.String("up", mf.UpPath), zap.String("down", mf.DownPath))
		return nil
	case "list":
		names, err := migration.ListMigrations(path)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	migrator, err := migration.New(db, path, log)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	switch command {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	case "step":
		if len(args) < 2 {
			return fmt.Errorf("step requires a count")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid step count %q", args[1])
		}
		return migrator.Steps(n)
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version: %d dirty: %v\n", version, dirty)
		return nil
	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force requires a version")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		return migrator.Force(version)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
