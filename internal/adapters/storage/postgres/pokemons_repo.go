package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pokemon-catalog/internal/domain/pokemons"
)

type PokemonsRepo struct {
	db *sql.DB
}

func NewPokemonsRepo(db *sql.DB) *PokemonsRepo {
	return &PokemonsRepo{db: db}
}

// Create inserta el pokemon y las asociaciones en una transacción. El
// INSERT ... SELECT de la unión solo inserta si el tipo existe, así los
// nombres desconocidos se ignoran sin error.
func (r *PokemonsRepo) Create(ctx context.Context, p pokemons.Pokemon) (pokemons.Pokemon, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return pokemons.Pokemon{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO pokemons (
			id, name, image,
			hp, attack, defense, speed,
			height, weight
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Name,
		toNullString(p.Image),
		p.HP,
		p.Attack,
		p.Defense,
		p.Speed,
		p.Height,
		p.Weight,
	)
	if err != nil {
		return pokemons.Pokemon{}, err
	}

	for _, name := range p.Types {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO pokemon_types (pokemon_id, type_id)
			SELECT $1::integer, id FROM types WHERE name = $2
			ON CONFLICT DO NOTHING
		`, p.ID, name)
		if err != nil {
			return pokemons.Pokemon{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return pokemons.Pokemon{}, err
	}
	return r.FindByID(ctx, p.ID)
}

func (r *PokemonsRepo) FindByID(ctx context.Context, id int) (pokemons.Pokemon, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, image,
			hp, attack, defense, speed,
			height, weight
		FROM pokemons
		WHERE id = $1
	`, id)

	p, err := scanPokemon(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pokemons.Pokemon{}, pokemons.ErrNotFound
		}
		return pokemons.Pokemon{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT t.name
		FROM pokemon_types pt
		JOIN types t ON t.id = pt.type_id
		WHERE pt.pokemon_id = $1
		ORDER BY t.name ASC
	`, id)
	if err != nil {
		return pokemons.Pokemon{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return pokemons.Pokemon{}, err
		}
		p.Types = append(p.Types, name)
	}
	return p, rows.Err()
}

func (r *PokemonsRepo) FindAll(ctx context.Context) ([]pokemons.Pokemon, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, image,
			hp, attack, defense, speed,
			height, weight
		FROM pokemons
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pokemons.Pokemon, 0)
	index := map[int]int{}
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, err
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	typeRows, err := r.db.QueryContext(ctx, `
		SELECT pt.pokemon_id, t.name
		FROM pokemon_types pt
		JOIN types t ON t.id = pt.type_id
		ORDER BY pt.pokemon_id ASC, t.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer typeRows.Close()

	for typeRows.Next() {
		var (
			id   int
			name string
		)
		if err := typeRows.Scan(&id, &name); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			out[i].Types = append(out[i].Types, name)
		}
	}
	return out, typeRows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPokemon(s scanner) (pokemons.Pokemon, error) {
	var p pokemons.Pokemon
	var image sql.NullString
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&image,
		&p.HP,
		&p.Attack,
		&p.Defense,
		&p.Speed,
		&p.Height,
		&p.Weight,
	); err != nil {
		return pokemons.Pokemon{}, err
	}
	if image.Valid {
		img := image.String
		p.Image = &img
	}
	p.Types = []string{}
	return p, nil
}

// image es nullable.
func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}
