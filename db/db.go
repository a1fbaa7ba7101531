package db

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// NewDB opens the sqlite database at dbPath and applies pending migrations.
// The sqlite3 driver must be registered by the caller.
func NewDB(dbPath string) (*sql.DB, error) {
	conn, err := goose.OpenDBWithDriver("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

func Migrate(conn *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
