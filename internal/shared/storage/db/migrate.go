package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Migrate applies all pending schema migrations for the dialect selected by
// databaseURL.
func Migrate(database *sql.DB, databaseURL string) error {
	var (
		gooseDialect string
		dir          string
	)
	switch DialectFor(databaseURL) {
	case DialectPostgres:
		gooseDialect = "postgres"
		dir = "migrations/postgres"
	default:
		gooseDialect = "sqlite3"
		dir = "migrations/sqlite"
	}

	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(database, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
