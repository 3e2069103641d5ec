package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"pokemon-catalog/internal/domain/pokemons"
	"pokemon-catalog/internal/domain/types"
)

// Requiere una base real: TEST_DB_DSN=postgres://... go test ./...
func openTestDB(t *testing.T) (*PokemonsRepo, *TypesRepo) {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(context.Background(), db, true); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewPokemonsRepo(db), NewTypesRepo(db)
}

func TestPokemonsRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo, typesRepo := openTestDB(t)

	for i, name := range []string{"fire", "flying"} {
		if _, err := typesRepo.FindOrCreate(ctx, types.Type{ID: []string{"a", "b"}[i], Name: name}); err != nil {
			t.Fatalf("FindOrCreate: %v", err)
		}
	}

	created, err := repo.Create(ctx, pokemons.Pokemon{
		ID: 1026, Name: "pyrobird", HP: 10, Types: []string{"flying", "plasma", "fire"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created.Types) != 2 || created.Types[0] != "fire" || created.Types[1] != "flying" {
		t.Fatalf("expected [fire flying], got %#v", created.Types)
	}
	if created.Image != nil {
		t.Fatalf("expected nil image")
	}

	all, err := repo.FindAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("FindAll: %v %#v", err, all)
	}

	if _, err := repo.FindByID(ctx, 1); !errors.Is(err, pokemons.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
