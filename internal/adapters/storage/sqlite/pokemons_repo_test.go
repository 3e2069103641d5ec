package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokemon-catalog/internal/domain/pokemons"
	"pokemon-catalog/internal/domain/types"
)

func newTestRepos(t *testing.T) (*PokemonsRepo, *TypesRepo) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db, true))
	return NewPokemonsRepo(db), NewTypesRepo(db)
}

func strPtr(s string) *string { return &s }

func TestPokemonsRepo_CreateAssociatesKnownTypesOnly(t *testing.T) {
	ctx := context.Background()
	repo, typesRepo := newTestRepos(t)

	_, err := typesRepo.FindOrCreate(ctx, types.Type{ID: "t-fire", Name: "fire"})
	require.NoError(t, err)
	_, err = typesRepo.FindOrCreate(ctx, types.Type{ID: "t-flying", Name: "flying"})
	require.NoError(t, err)

	created, err := repo.Create(ctx, pokemons.Pokemon{
		ID: 1026, Name: "pyrobird", Image: strPtr("https://img.example/p.png"),
		HP: 70, Attack: 80, Defense: 60, Speed: 95, Height: 12, Weight: 300,
		Types: []string{"flying", "plasma", "fire", "Fire"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1026, created.ID)
	assert.Equal(t, []string{"fire", "flying"}, created.Types)
	require.NotNil(t, created.Image)
	assert.Equal(t, "https://img.example/p.png", *created.Image)
	assert.Equal(t, 95, created.Speed)
}

func TestPokemonsRepo_FindAllFlattensTypes(t *testing.T) {
	ctx := context.Background()
	repo, typesRepo := newTestRepos(t)

	_, err := typesRepo.FindOrCreate(ctx, types.Type{ID: "t-water", Name: "water"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, pokemons.Pokemon{ID: 2000, Name: "later", Types: []string{"water"}})
	require.NoError(t, err)
	_, err = repo.Create(ctx, pokemons.Pokemon{ID: 1999, Name: "earlier", Types: []string{"ghost"}})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, 1999, all[0].ID)
	assert.Equal(t, []string{}, all[0].Types)
	assert.Nil(t, all[0].Image)
	assert.Equal(t, 2000, all[1].ID)
	assert.Equal(t, []string{"water"}, all[1].Types)
}

func TestPokemonsRepo_FindByIDNotFound(t *testing.T) {
	repo, _ := newTestRepos(t)

	_, err := repo.FindByID(context.Background(), 99999)
	assert.ErrorIs(t, err, pokemons.ErrNotFound)
}

func TestPokemonsRepo_DuplicateIDFails(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepos(t)

	_, err := repo.Create(ctx, pokemons.Pokemon{ID: 10, Name: "a"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, pokemons.Pokemon{ID: 10, Name: "b"})
	assert.Error(t, err)
}

func TestTypesRepo_FindOrCreateKeepsFirstID(t *testing.T) {
	ctx := context.Background()
	_, typesRepo := newTestRepos(t)

	first, err := typesRepo.FindOrCreate(ctx, types.Type{ID: "id-1", Name: "grass"})
	require.NoError(t, err)
	second, err := typesRepo.FindOrCreate(ctx, types.Type{ID: "id-2", Name: "grass"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = typesRepo.FindOrCreate(ctx, types.Type{ID: "id-3", Name: "Grass"})
	require.NoError(t, err)

	all, err := typesRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "names are case-sensitive")
}

func TestMigrate_ResetDropsData(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "reset.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db, true))
	repo := NewPokemonsRepo(db)
	_, err = repo.Create(ctx, pokemons.Pokemon{ID: 1, Name: "tmp"})
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db, false))
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, Migrate(ctx, db, true))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
