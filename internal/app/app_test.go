package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokemon-catalog/internal/adapters/pokeapi/pokeapitest"
	"pokemon-catalog/internal/app"
	"pokemon-catalog/internal/domain/pokemons"
	"pokemon-catalog/internal/platform/config"
)

func upstream(t *testing.T) *pokeapitest.Server {
	t.Helper()
	srv := pokeapitest.New([]pokemons.Pokemon{
		{ID: 1, Name: "bulbasaur", HP: 45, Types: []string{"grass", "poison"}},
		{ID: 4, Name: "charmander", HP: 39, Types: []string{"fire"}},
	}, []string{"grass", "poison", "fire"})
	t.Cleanup(srv.Close)
	return srv
}

func baseConfig(srv *pokeapitest.Server) config.Config {
	return config.Config{
		APIURL:           srv.BaseURL(),
		HTTPTimeout:      2 * time.Second,
		FetchConcurrency: 4,
		DBReset:          true,
	}
}

func TestApp_MemoryStoreStartWarmsCatalog(t *testing.T) {
	srv := upstream(t)

	a, err := app.New(context.Background(), baseConfig(srv), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	assert.Equal(t, "memory", a.Store())

	require.NoError(t, a.Start(context.Background()))
	hits := srv.DetailHits()
	assert.Equal(t, int64(2), hits)

	names, err := a.Types.ListNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fire", "grass", "poison"}, names)

	// El listado sale del cache: no hay más pedidos de detalle.
	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pokemons", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, hits, srv.DetailHits())
}

func TestApp_SQLiteStorePersistsCreates(t *testing.T) {
	srv := upstream(t)
	cfg := baseConfig(srv)
	cfg.SQLitePath = filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()

	a, err := app.New(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	assert.Equal(t, "sqlite", a.Store())
	require.NoError(t, a.Start(ctx))

	created, err := a.Pokemons.Create(ctx, pokemons.CreateInput{Name: "emberling", HP: 10, Types: []string{"fire", "ghost"}})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, []string{"fire"}, created.Types)

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pokemons/5", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got pokemons.Pokemon
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "emberling", got.Name)
}

func TestApp_StartFailsOnCanceledContext(t *testing.T) {
	srv := upstream(t)

	a, err := app.New(context.Background(), baseConfig(srv), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.Start(ctx), context.Canceled)
}
