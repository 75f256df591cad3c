package main

import (
	"database/sql"
	"fmt"
	"os"
	"sort"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RentalService/internal/config"
	"github.com/m04kA/SMC-RentalService/migrations"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Управление миграциями схемы базы данных",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "путь к файлу конфигурации")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Применить все неприменённые миграции",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(runUp)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Показать состояние миграций",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(runStatus)
			},
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func withDB(fn func(db *sql.DB) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := ensureVersionTable(db); err != nil {
		return err
	}

	return fn(db)
}

func ensureVersionTable(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		name       TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

func migrationNames() ([]string, error) {
	entries, err := migrations.FS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func appliedSet(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query(`SELECT name FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan migration name: %w", err)
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

func runUp(db *sql.DB) error {
	names, err := migrationNames()
	if err != nil {
		return err
	}

	applied, err := appliedSet(db)
	if err != nil {
		return err
	}

	var count int
	for _, name := range names {
		if applied[name] {
			continue
		}

		script, err := migrations.FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		// каждая миграция применяется в собственной транзакции
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin tx for %s: %w", name, err)
		}

		if _, err := tx.Exec(string(script)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", name, err)
		}

		fmt.Printf("applied %s\n", name)
		count++
	}

	if count == 0 {
		fmt.Println("nothing to apply")
	}
	return nil
}

func runStatus(db *sql.DB) error {
	names, err := migrationNames()
	if err != nil {
		return err
	}

	applied, err := appliedSet(db)
	if err != nil {
		return err
	}

	for _, name := range names {
		state := "pending"
		if applied[name] {
			state = "applied"
		}
		fmt.Printf("%-40s %s\n", name, state)
	}
	return nil
}
