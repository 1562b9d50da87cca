package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"libraryapi/internal/config"
	"libraryapi/internal/logging"
	"libraryapi/internal/platform/database"
)

func main() {
	app := &cli.App{
		Name:  "migrate",
		Usage: "manage the library database schema",
		Commands: []*cli.Command{
			upCmd,
			downCmd,
			statusCmd,
			createCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

var upCmd = &cli.Command{
	Name:  "up",
	Usage: "apply every pending migration",
	Action: func(cctx *cli.Context) error {
		return withProvider(cctx.Context, func(ctx context.Context, p *goose.Provider, log *zap.Logger) error {
			results, err := p.Up(ctx)
			if err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			for _, r := range results {
				log.Info("applied", zap.Int64("version", r.Source.Version), zap.Duration("took", r.Duration))
			}
			log.Info("migrations applied", zap.Int("count", len(results)))
			return nil
		})
	},
}

var downCmd = &cli.Command{
	Name:  "down",
	Usage: "roll back the most recent migration",
	Action: func(cctx *cli.Context) error {
		return withProvider(cctx.Context, func(ctx context.Context, p *goose.Provider, log *zap.Logger) error {
			r, err := p.Down(ctx)
			if err != nil {
				return fmt.Errorf("roll back migration: %w", err)
			}
			log.Info("rolled back", zap.Int64("version", r.Source.Version))
			return nil
		})
	},
}

var statusCmd = &cli.Command{
	Name:  "status",
	Usage: "print the state of every migration",
	Action: func(cctx *cli.Context) error {
		return withProvider(cctx.Context, func(ctx context.Context, p *goose.Provider, _ *zap.Logger) error {
			statuses, err := p.Status(ctx)
			if err != nil {
				return fmt.Errorf("migration status: %w", err)
			}
			w := cctx.App.Writer
			for _, s := range statuses {
				applied := "pending"
				if s.State == goose.StateApplied {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(w, "%-20s %s\n", applied, filepath.Base(s.Source.Path))
			}
			return nil
		})
	},
}

var createFlags struct {
	driver string
	dir    string
}

var createCmd = &cli.Command{
	Name:      "create",
	Usage:     "create a new SQL migration file",
	ArgsUsage: "<name>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "driver",
			Usage:       "dialect directory to create the file in (pgx or sqlite3)",
			EnvVars:     []string{"DB_DRIVER"},
			Value:       "pgx",
			Destination: &createFlags.driver,
		},
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "root of the migrations tree",
			EnvVars:     []string{"MIGRATIONS_DIR"},
			Value:       defaultMigrationsRoot,
			Destination: &createFlags.dir,
		},
	},
	Action: func(cctx *cli.Context) error {
		name := cctx.Args().First()
		if name == "" {
			return fmt.Errorf("name is required for 'create'")
		}
		dir, err := migrationsDir(createFlags.dir, createFlags.driver)
		if err != nil {
			return err
		}
		if err := goose.Create(nil, dir, name, "sql"); err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		return nil
	},
}

// withProvider loads configuration, opens the configured database and runs
// fn with a goose provider over the embedded migrations.
func withProvider(ctx context.Context, fn func(context.Context, *goose.Provider, *zap.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.Named("migrate").With(
		zap.String("driver", cfg.Database.Driver),
		zap.String("dsn", config.RedactDSN(cfg.Database.DSN)),
	)

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := database.NewMigrationProvider(db.DB, cfg.Database.Driver)
	if err != nil {
		return err
	}
	return fn(ctx, p, log)
}
