package memory

import (
	"context"
	"errors"
	"slices"
	"testing"

	"pokemon-catalog/internal/domain/pokemons"
	"pokemon-catalog/internal/domain/types"
)

func TestPokemonRepo_CreateIgnoresUnknownTypes(t *testing.T) {
	ctx := context.Background()
	vocab := NewTypeRepo()
	_, _ = vocab.FindOrCreate(ctx, types.Type{ID: "t1", Name: "fire"})
	_, _ = vocab.FindOrCreate(ctx, types.Type{ID: "t2", Name: "flying"})

	repo := NewPokemonRepo(vocab)

	got, err := repo.Create(ctx, pokemons.Pokemon{
		ID:    152,
		Name:  "pyrobird",
		Types: []string{"flying", "Fire", "plasma", "fire"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(got.Types) != 2 || got.Types[0] != "fire" || got.Types[1] != "flying" {
		t.Fatalf("expected [fire flying], got %#v", got.Types)
	}

	stored, err := repo.FindByID(ctx, 152)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if stored.Name != "pyrobird" || !slices.Equal(stored.Types, []string{"fire", "flying"}) {
		t.Fatalf("unexpected stored pokemon: %#v", stored)
	}
}

func TestPokemonRepo_FindByID_NotFound(t *testing.T) {
	repo := NewPokemonRepo(nil)

	_, err := repo.FindByID(context.Background(), 1)
	if !errors.Is(err, pokemons.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPokemonRepo_RejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewPokemonRepo(nil)

	if _, err := repo.Create(ctx, pokemons.Pokemon{ID: 5, Name: "a"}); err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}
	if _, err := repo.Create(ctx, pokemons.Pokemon{ID: 5, Name: "b"}); err == nil {
		t.Fatalf("expected error on duplicate id")
	}
}

func TestPokemonRepo_FindAllOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPokemonRepo(nil)

	for _, id := range []int{9, 3, 7} {
		if _, err := repo.Create(ctx, pokemons.Pokemon{ID: id, Name: "p"}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if len(all) != 3 || all[0].ID != 3 || all[1].ID != 7 || all[2].ID != 9 {
		t.Fatalf("expected ids [3 7 9], got %#v", all)
	}
	if all[0].Types == nil {
		t.Fatalf("expected non-nil types slice")
	}
}

func TestTypeRepo_FindOrCreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewTypeRepo()

	first, _ := repo.FindOrCreate(ctx, types.Type{ID: "a", Name: "water"})
	second, _ := repo.FindOrCreate(ctx, types.Type{ID: "b", Name: "water"})
	if first.ID != second.ID {
		t.Fatalf("expected same stored type, got %s vs %s", first.ID, second.ID)
	}

	all, _ := repo.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 type, got %d", len(all))
	}
}

func TestTypeRepo_ListSortedByName(t *testing.T) {
	ctx := context.Background()
	repo := NewTypeRepo()

	for i, name := range []string{"water", "fire", "normal", "Grass"} {
		if _, err := repo.FindOrCreate(ctx, types.Type{ID: string(rune('a' + i)), Name: name}); err != nil {
			t.Fatalf("find or create %s: %v", name, err)
		}
	}

	all, _ := repo.List(ctx)
	got := make([]string, 0, len(all))
	for _, ty := range all {
		got = append(got, ty.Name)
	}
	want := []string{"Grass", "fire", "normal", "water"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
