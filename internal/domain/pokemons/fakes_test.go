package pokemons_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"pokemon-catalog/internal/domain/pokemons"
)

// fakeRemote sirve páginas armadas a mano. Las URLs de detalle son
// "detail/<id>" y las de página "page/<n>".
type fakeRemote struct {
	pages      [][]pokemons.Pokemon
	failDetail map[int]error
	failPage   map[int]error
	failGet    map[string]error

	listCalls   atomic.Int32
	detailCalls atomic.Int32
	getCalls    atomic.Int32
}

func (f *fakeRemote) ListPage(ctx context.Context, pageURL string) (pokemons.ListPage, error) {
	f.listCalls.Add(1)
	if err := ctx.Err(); err != nil {
		return pokemons.ListPage{}, err
	}

	n := 0
	if pageURL != "" {
		n, _ = strconv.Atoi(strings.TrimPrefix(pageURL, "page/"))
	}
	if err, ok := f.failPage[n]; ok {
		return pokemons.ListPage{}, err
	}
	if n >= len(f.pages) {
		return pokemons.ListPage{}, nil
	}

	page := pokemons.ListPage{}
	for _, p := range f.pages[n] {
		page.Items = append(page.Items, pokemons.ResourceRef{Name: p.Name, URL: fmt.Sprintf("detail/%d", p.ID)})
	}
	if n+1 < len(f.pages) {
		page.Next = fmt.Sprintf("page/%d", n+1)
	}
	return page, nil
}

func (f *fakeRemote) GetPokemon(ctx context.Context, ref string) (pokemons.Pokemon, error) {
	if err := ctx.Err(); err != nil {
		return pokemons.Pokemon{}, err
	}

	if strings.HasPrefix(ref, "detail/") {
		f.detailCalls.Add(1)
		id, _ := strconv.Atoi(strings.TrimPrefix(ref, "detail/"))
		if err, ok := f.failDetail[id]; ok {
			return pokemons.Pokemon{}, err
		}
		return f.find(id)
	}

	f.getCalls.Add(1)
	if err, ok := f.failGet[ref]; ok {
		return pokemons.Pokemon{}, err
	}
	id, _ := strconv.Atoi(ref)
	return f.find(id)
}

func (f *fakeRemote) find(id int) (pokemons.Pokemon, error) {
	for _, page := range f.pages {
		for _, p := range page {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return pokemons.Pokemon{}, pokemons.ErrNotFound
}

// fakeRepo es un store local mínimo. knownTypes vacío acepta cualquier tipo.
type fakeRepo struct {
	mu         sync.Mutex
	items      []pokemons.Pokemon
	knownTypes map[string]bool
	readErr    error
	reserved   map[int]bool

	creates int
}

func (r *fakeRepo) FindAll(context.Context) ([]pokemons.Pokemon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}
	return append([]pokemons.Pokemon(nil), r.items...), nil
}

func (r *fakeRepo) FindByID(_ context.Context, id int) (pokemons.Pokemon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reserved[id] {
		return pokemons.Pokemon{ID: id}, nil
	}
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return pokemons.Pokemon{}, pokemons.ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, p pokemons.Pokemon) (pokemons.Pokemon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++

	kept := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		if len(r.knownTypes) == 0 || r.knownTypes[t] {
			kept = append(kept, t)
		}
	}
	p.Types = kept
	r.items = append(r.items, p)
	return p, nil
}

func mon(id int, name string, types ...string) pokemons.Pokemon {
	return pokemons.Pokemon{ID: id, Name: name, Types: types}
}
