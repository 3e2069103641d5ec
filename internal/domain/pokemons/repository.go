package pokemons

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicateName = errors.New("name already in use")
	ErrIDConflict    = errors.New("id already in use")
	ErrUpstream      = errors.New("upstream error")
)

// Repository es el store local de pokemons creados por usuarios.
type Repository interface {
	FindAll(ctx context.Context) ([]Pokemon, error)
	// FindByID devuelve ErrNotFound si no existe.
	FindByID(ctx context.Context, id int) (Pokemon, error)
	// Create persiste p con su ID y asocia los tipos que existan en el
	// vocabulario; los nombres desconocidos se ignoran. Devuelve lo guardado.
	// Los tipos de un registro local vuelven ordenados por nombre (acá y en
	// FindByID/FindAll), no en el orden pedido: la relación no guarda posición.
	// Los remotos conservan el orden de slot.
	Create(ctx context.Context, p Pokemon) (Pokemon, error)
}

// Remote es la API de terceros (forma PokeAPI).
type Remote interface {
	// ListPage trae una página del listado. pageURL vacío => primera página.
	ListPage(ctx context.Context, pageURL string) (ListPage, error)
	// GetPokemon trae el detalle por URL absoluta o por ID, ya normalizado.
	GetPokemon(ctx context.Context, ref string) (Pokemon, error)
}
