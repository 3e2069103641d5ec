// Package app arma el servicio a partir de la config: elige el store,
// corre migraciones, crea el cliente remoto y los services.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"pokemon-catalog/internal/adapters/pokeapi"
	mem "pokemon-catalog/internal/adapters/storage/memory"
	pg "pokemon-catalog/internal/adapters/storage/postgres"
	lite "pokemon-catalog/internal/adapters/storage/sqlite"
	"pokemon-catalog/internal/domain/pokemons"
	"pokemon-catalog/internal/domain/types"
	"pokemon-catalog/internal/platform/config"
	"pokemon-catalog/internal/platform/logger"
	"pokemon-catalog/internal/router"
)

type App struct {
	Handler  http.Handler
	Pokemons *pokemons.Service
	Types    *types.Service

	catalog *pokemons.RemoteCatalog
	db      *sql.DB
	store   string
	log     logger.Logger
}

func New(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	client, err := pokeapi.NewClient(pokeapi.Config{BaseURL: cfg.APIURL, Timeout: cfg.HTTPTimeout})
	if err != nil {
		return nil, fmt.Errorf("pokeapi client: %w", err)
	}

	a := &App{log: log}
	pokemonRepo, typeRepo, err := a.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a.catalog = pokemons.NewRemoteCatalog(client,
		pokemons.WithConcurrency(cfg.FetchConcurrency),
		pokemons.WithLogger(log),
	)
	a.Types = types.NewService(typeRepo, client, log)
	a.Pokemons = pokemons.NewService(a.catalog, client, pokemonRepo, log)
	a.Handler = router.NewRouter(router.Options{
		Pokemons: a.Pokemons,
		Types:    a.Types,
		Logger:   log,
	})
	return a, nil
}

// openStore: DB_DSN => Postgres, SQLITE_PATH => SQLite, ninguno => memoria.
func (a *App) openStore(ctx context.Context, cfg config.Config) (pokemons.Repository, types.Repository, error) {
	switch {
	case cfg.DBDSN != "":
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.Migrate(ctx, db, cfg.DBReset); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		a.db, a.store = db, "postgres"
		return pg.NewPokemonsRepo(db), pg.NewTypesRepo(db), nil

	case cfg.SQLitePath != "":
		db, err := lite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := lite.Migrate(ctx, db, cfg.DBReset); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		a.db, a.store = db, "sqlite"
		return lite.NewPokemonsRepo(db), lite.NewTypesRepo(db), nil

	default:
		typeRepo := mem.NewTypeRepo()
		a.store = "memory"
		return mem.NewPokemonRepo(typeRepo), typeRepo, nil
	}
}

// Start sincroniza el vocabulario de tipos y precarga el catálogo remoto.
// Solo falla si ctx se cancela; los errores remotos se loguean.
func (a *App) Start(ctx context.Context) error {
	a.log.Info("starting", map[string]any{"store": a.store})

	a.Types.Sync(ctx)

	if _, err := a.catalog.FetchAll(ctx); err != nil {
		return fmt.Errorf("warm remote catalog: %w", err)
	}
	return nil
}

// Store devuelve el backend elegido: "postgres", "sqlite" o "memory".
func (a *App) Store() string { return a.store }

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
