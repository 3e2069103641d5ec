package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Open abre (o crea) la base SQLite en dbPath.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db path: %w", err)
	}

	// busy_timeout: espera de locks; WAL + synchronous(NORMAL) para escrituras;
	// foreign_keys para que la tabla de unión respete las FK.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(1)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS pokemon_types`,
	`DROP TABLE IF EXISTS pokemons`,
	`DROP TABLE IF EXISTS types`,
}

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS types (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS pokemons (
		id      INTEGER PRIMARY KEY,
		name    TEXT    NOT NULL,
		image   TEXT,
		hp      INTEGER NOT NULL,
		attack  INTEGER NOT NULL,
		defense INTEGER NOT NULL,
		speed   INTEGER NOT NULL,
		height  INTEGER NOT NULL,
		weight  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pokemon_types (
		pokemon_id INTEGER NOT NULL REFERENCES pokemons(id) ON DELETE CASCADE,
		type_id    TEXT    NOT NULL REFERENCES types(id) ON DELETE CASCADE,
		PRIMARY KEY (pokemon_id, type_id)
	)`,
}

// Migrate crea el schema; con reset=true lo borra antes.
func Migrate(ctx context.Context, db *sql.DB, reset bool) error {
	stmts := createStatements
	if reset {
		stmts = append(append([]string{}, dropStatements...), createStatements...)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
