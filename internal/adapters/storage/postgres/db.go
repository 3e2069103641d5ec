package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
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
		hp      INTEGER NOT NULL CHECK (hp >= 0),
		attack  INTEGER NOT NULL CHECK (attack >= 0),
		defense INTEGER NOT NULL CHECK (defense >= 0),
		speed   INTEGER NOT NULL CHECK (speed >= 0),
		height  INTEGER NOT NULL CHECK (height >= 0),
		weight  INTEGER NOT NULL CHECK (weight >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS pokemon_types (
		pokemon_id INTEGER NOT NULL REFERENCES pokemons(id) ON DELETE CASCADE,
		type_id    TEXT    NOT NULL REFERENCES types(id) ON DELETE CASCADE,
		PRIMARY KEY (pokemon_id, type_id)
	)`,
}

// Migrate crea el schema. Con reset=true primero borra las tablas: los datos
// locales no sobreviven a un reinicio.
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
