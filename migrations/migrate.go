// Package migrations embeds the goose SQL migrations of the users, routes and
// posts databases and applies them at service startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed users/*.sql routes/*.sql posts/*.sql
var embedMigrations embed.FS

// ErrUnknownService is returned for a service without an embedded migration directory.
var ErrUnknownService = errors.New("no migrations for service")

// Migrate applies all pending migrations of service ("users", "routes" or
// "posts") to db. Each service keeps its own version table, so the three
// schemas may share a database.
func Migrate(db *sql.DB, service string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	if _, err := fs.Stat(embedMigrations, service); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownService, service)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetTableName(service + "_goose_db_version")

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, service); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
