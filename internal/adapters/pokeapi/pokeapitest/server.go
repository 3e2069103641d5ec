// Package pokeapitest levanta un PokeAPI falso sobre httptest para tests de
// integración (adapter, router, app).
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"pokemon-catalog/internal/domain/pokemons"
)

type Server struct {
	*httptest.Server

	mu        sync.RWMutex
	pokemons  []pokemons.Pokemon
	typeNames []string
	pageSize  int
	failIDs   map[int]int // id => status
	failPage  int         // offset cuya página falla (-1 = ninguna)

	detailHits atomic.Int64
	listHits   atomic.Int64
}

type Option func(*Server)

// WithPageSize fuerza el tamaño de página ignorando el limit pedido.
func WithPageSize(n int) Option {
	return func(s *Server) { s.pageSize = n }
}

// WithDetailFailure hace que el detalle de id responda status.
func WithDetailFailure(id, status int) Option {
	return func(s *Server) { s.failIDs[id] = status }
}

// WithPageFailure hace fallar con 500 la página que arranca en offset, tanto
// en el listado de pokemons como en el de tipos.
func WithPageFailure(offset int) Option {
	return func(s *Server) { s.failPage = offset }
}

func New(items []pokemons.Pokemon, typeNames []string, opts ...Option) *Server {
	s := &Server{
		pokemons:  items,
		typeNames: typeNames,
		failIDs:   map[int]int{},
		failPage:  -1,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/api/v2/pokemon", s.listPokemons)
	// Los detalles vienen con "/" final (".../pokemon/1/").
	r.Get("/api/v2/pokemon/*", s.getPokemon)
	r.Get("/api/v2/type", s.listTypes)
	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL es el equivalente a https://pokeapi.co/api/v2.
func (s *Server) BaseURL() string { return s.URL + "/api/v2" }

func (s *Server) DetailHits() int64 { return s.detailHits.Load() }
func (s *Server) ListHits() int64   { return s.listHits.Load() }

func (s *Server) listPokemons(w http.ResponseWriter, r *http.Request) {
	s.listHits.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit, offset := s.window(r)
	if offset == s.failPage {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	results := make([]map[string]string, 0, limit)
	for i := offset; i < len(s.pokemons) && i < offset+limit; i++ {
		p := s.pokemons[i]
		results = append(results, map[string]string{
			"name": p.Name,
			"url":  fmt.Sprintf("%s/pokemon/%d/", s.BaseURL(), p.ID),
		})
	}
	writeList(w, results, s.nextURL("/pokemon", offset, limit, len(s.pokemons)))
}

func (s *Server) listTypes(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit, offset := s.window(r)
	if offset == s.failPage {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	results := make([]map[string]string, 0, limit)
	for i := offset; i < len(s.typeNames) && i < offset+limit; i++ {
		results = append(results, map[string]string{
			"name": s.typeNames[i],
			"url":  fmt.Sprintf("%s/type/%d/", s.BaseURL(), i+1),
		})
	}
	writeList(w, results, s.nextURL("/type", offset, limit, len(s.typeNames)))
}

func (s *Server) getPokemon(w http.ResponseWriter, r *http.Request) {
	s.detailHits.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref := strings.Trim(chi.URLParam(r, "*"), "/")
	for _, p := range s.pokemons {
		if strconv.Itoa(p.ID) != ref && p.Name != ref {
			continue
		}
		if st, ok := s.failIDs[p.ID]; ok {
			http.Error(w, http.StatusText(st), st)
			return
		}
		writeJSON(w, detailPayload(p))
		return
	}
	http.Error(w, "Not Found", http.StatusNotFound)
}

func (s *Server) window(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}
	if s.pageSize > 0 {
		limit = s.pageSize
	}
	return limit, max(offset, 0)
}

func (s *Server) nextURL(path string, offset, limit, total int) *string {
	if offset+limit >= total {
		return nil
	}
	u := fmt.Sprintf("%s%s?offset=%d&limit=%d", s.BaseURL(), path, offset+limit, limit)
	return &u
}

// detailPayload arma un detalle con la forma real de PokeAPI (stats en
// orden distinto al canónico para ejercitar la búsqueda por nombre).
func detailPayload(p pokemons.Pokemon) map[string]any {
	stat := func(name string, v int) map[string]any {
		return map[string]any{"base_stat": v, "effort": 0, "stat": map[string]string{"name": name}}
	}
	typeSlots := make([]map[string]any, 0, len(p.Types))
	for i, t := range p.Types {
		typeSlots = append(typeSlots, map[string]any{"slot": i + 1, "type": map[string]string{"name": t}})
	}

	return map[string]any{
		"id":     p.ID,
		"name":   p.Name,
		"height": p.Height,
		"weight": p.Weight,
		"sprites": map[string]any{
			"front_default": "https://example.invalid/front.png",
			"other": map[string]any{
				"official-artwork": map[string]any{"front_default": p.Image},
			},
		},
		"stats": []map[string]any{
			stat("speed", p.Speed),
			stat("special-defense", 1),
			stat("hp", p.HP),
			stat("defense", p.Defense),
			stat("attack", p.Attack),
		},
		"types": typeSlots,
	}
}

func writeList(w http.ResponseWriter, results []map[string]string, next *string) {
	writeJSON(w, map[string]any{
		"count":    len(results),
		"next":     next,
		"previous": nil,
		"results":  results,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
