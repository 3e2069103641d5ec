package postgres

import (
	"context"
	"database/sql"

	"pokemon-catalog/internal/domain/types"
)

type TypesRepo struct {
	db *sql.DB
}

func NewTypesRepo(db *sql.DB) *TypesRepo {
	return &TypesRepo{db: db}
}

func (r *TypesRepo) FindOrCreate(ctx context.Context, t types.Type) (types.Type, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO types (id, name) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`, t.ID, t.Name)
	if err != nil {
		return types.Type{}, err
	}

	var out types.Type
	err = r.db.QueryRowContext(ctx, `SELECT id, name FROM types WHERE name = $1`, t.Name).
		Scan(&out.ID, &out.Name)
	return out, err
}

func (r *TypesRepo) List(ctx context.Context) ([]types.Type, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM types ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]types.Type, 0)
	for rows.Next() {
		var t types.Type
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
