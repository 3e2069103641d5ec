package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pokemon-catalog/docs"
	"pokemon-catalog/internal/domain/pokemons"
	"pokemon-catalog/internal/domain/types"
	"pokemon-catalog/internal/middleware"
	"pokemon-catalog/internal/platform/logger"
)

type Options struct {
	Pokemons *pokemons.Service
	Types    *types.Service

	Logger logger.Logger // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// Por fuera de Recoverer, así los 500 por panic también quedan logueados.
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	pokemons.RegisterRoutes(r, opts.Pokemons, log)
	types.RegisterRoutes(r, opts.Types, log)

	return r
}
