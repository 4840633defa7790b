package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ogurasousui/codex-payroll-ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	configPathFlag    string
	migrationsDirFlag string
)

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Apply payroll ledger schema migrations",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	rootCmd.PersistentFlags().StringVar(&migrationsDirFlag, "dir", "assets/migrations", "directory containing migration files")

	for _, action := range []struct {
		use   string
		short string
	}{
		{"up", "Apply all pending migrations"},
		{"down", "Roll back all migrations"},
		{"drop", "Drop every table in the database"},
		{"version", "Print the current migration version"},
	} {
		rootCmd.AddCommand(&cobra.Command{
			Use:   action.use,
			Short: action.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(action.use)
			},
		})
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func run(action string) error {
	cfg, err := config.Load(effectiveConfigPath(configPathFlag))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Storage.Driver != config.StoragePostgres {
		return fmt.Errorf("storage.driver is %q, migrations require %q", cfg.Storage.Driver, config.StoragePostgres)
	}

	if err := runMigration(action, migrationsDirFlag, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("migration %s failed: %w", action, err)
	}

	log.Printf("migration %s completed", action)
	return nil
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func runMigration(action, dir, dsn string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	absDir = filepath.ToSlash(absDir)

	m, err := migrate.New(fmt.Sprintf("file://%s", absDir), dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				log.Printf("no migration applied")
				return nil
			}
			return err
		}
		log.Printf("version=%d dirty=%t", version, dirty)
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}
