package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"

	"pokemon-catalog/internal/domain/pokemons"
)

type pokemonRepo struct {
	mu    sync.RWMutex
	byID  map[int]pokemons.Pokemon
	types *TypeRepo
}

// NewPokemonRepo crea el store local en memoria. Los tipos se validan contra
// vocab igual que lo haría la tabla de unión en SQL.
func NewPokemonRepo(vocab *TypeRepo) pokemons.Repository {
	if vocab == nil {
		vocab = NewTypeRepo()
	}
	return &pokemonRepo{
		byID:  make(map[int]pokemons.Pokemon),
		types: vocab,
	}
}

func (r *pokemonRepo) Create(ctx context.Context, p pokemons.Pokemon) (pokemons.Pokemon, error) {
	if p.ID <= 0 {
		return pokemons.Pokemon{}, errors.New("pokemon id required")
	}

	// Solo se asocian tipos existentes; el resto se ignora. Orden por nombre,
	// igual que devuelven los stores SQL.
	associated := make([]string, 0, len(p.Types))
	for _, name := range p.Types {
		if r.types.has(name) && !slices.Contains(associated, name) {
			associated = append(associated, name)
		}
	}
	slices.Sort(associated)
	p.Types = associated

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; exists {
		return pokemons.Pokemon{}, errors.New("pokemon already exists")
	}
	r.byID[p.ID] = clone(p)
	return clone(p), nil
}

func (r *pokemonRepo) FindByID(ctx context.Context, id int) (pokemons.Pokemon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pokemons.Pokemon{}, pokemons.ErrNotFound
	}
	return clone(p), nil
}

func (r *pokemonRepo) FindAll(ctx context.Context) ([]pokemons.Pokemon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pokemons.Pokemon, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, clone(p))
	}

	// Mismo orden que los stores SQL (id asc).
	slices.SortFunc(out, func(a, b pokemons.Pokemon) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func clone(p pokemons.Pokemon) pokemons.Pokemon {
	p.Types = slices.Clone(p.Types)
	if p.Types == nil {
		p.Types = []string{}
	}
	if p.Image != nil {
		img := *p.Image
		p.Image = &img
	}
	return p
}
