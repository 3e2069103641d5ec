package pokemons

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"pokemon-catalog/internal/platform/logger"
)

// Catalog es la vista cacheada del origen remoto.
type Catalog interface {
	FetchAll(ctx context.Context) ([]Pokemon, error)
	MaxRemoteID() int
}

type Service struct {
	catalog Catalog
	remote  Remote
	repo    Repository
	log     logger.Logger

	// createMu serializa Create: el cálculo max(id)+1 y el chequeo de nombre
	// no son atómicos contra el store.
	createMu sync.Mutex
}

func NewService(catalog Catalog, remote Remote, repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		catalog: catalog,
		remote:  remote,
		repo:    repo,
		log:     log.With(map[string]any{"component": "pokemons"}),
	}
}

// GetAll concatena el catálogo remoto (primero) con los pokemons locales.
// Si el store local falla se loguea y se sigue solo con los remotos.
func (s *Service) GetAll(ctx context.Context) ([]Pokemon, error) {
	remote, err := s.catalog.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	local, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("local store read failed, serving remote only", map[string]any{"err": err})
		local = nil
	}

	all := make([]Pokemon, 0, len(remote)+len(local))
	all = append(all, remote...)
	all = append(all, local...)
	return all, nil
}

// List aplica filtro, orden y paginado sobre el agregado.
func (s *Service) List(ctx context.Context, q Query) (ListResult, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return ListResult{}, err
	}
	return Apply(all, q), nil
}

// GetByID resuelve por rango: IDs por encima del máximo remoto son locales;
// el resto se pide a la API remota directamente (no al cache).
func (s *Service) GetByID(ctx context.Context, id int) (Pokemon, error) {
	if id <= 0 {
		return Pokemon{}, ErrNotFound
	}

	if id > s.catalog.MaxRemoteID() {
		p, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return Pokemon{}, ErrNotFound
			}
			return Pokemon{}, fmt.Errorf("find local pokemon %d: %w", id, err)
		}
		return p, nil
	}

	p, err := s.remote.GetPokemon(ctx, strconv.Itoa(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pokemon{}, ErrNotFound
		}
		if errors.Is(err, ErrUpstream) {
			return Pokemon{}, err
		}
		return Pokemon{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return p, nil
}

type CreateInput struct {
	Name    string
	Image   *string
	HP      int
	Attack  int
	Defense int
	Speed   int
	Height  int
	Weight  int
	Types   []string
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	for field, v := range map[string]int{
		"hp": in.HP, "attack": in.Attack, "defense": in.Defense,
		"speed": in.Speed, "height": in.Height, "weight": in.Weight,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must be >= 0", ErrInvalidInput, field)
		}
	}
	for _, t := range in.Types {
		if strings.TrimSpace(t) != "" {
			return nil
		}
	}
	return fmt.Errorf("%w: at least one type is required", ErrInvalidInput)
}

// Create guarda un pokemon nuevo en el store local con ID = max(ids)+1.
// Falla con ErrDuplicateName si el nombre ya existe (sin distinguir mayúsculas).
func (s *Service) Create(ctx context.Context, in CreateInput) (Pokemon, error) {
	if err := in.validate(); err != nil {
		return Pokemon{}, err
	}
	name := strings.TrimSpace(in.Name)

	s.createMu.Lock()
	defer s.createMu.Unlock()

	// A diferencia de GetAll, acá un error del store local no se tolera:
	// sin los locales el max(id) podría estar mal.
	remote, err := s.catalog.FetchAll(ctx)
	if err != nil {
		return Pokemon{}, err
	}
	local, err := s.repo.FindAll(ctx)
	if err != nil {
		return Pokemon{}, fmt.Errorf("read local pokemons: %w", err)
	}

	maxID := 0
	for _, group := range [][]Pokemon{remote, local} {
		for _, p := range group {
			if EqualFold(p.Name, name) {
				return Pokemon{}, fmt.Errorf("%w: %s", ErrDuplicateName, name)
			}
			maxID = max(maxID, p.ID)
		}
	}
	id := maxID + 1

	if _, err := s.repo.FindByID(ctx, id); err == nil {
		return Pokemon{}, fmt.Errorf("%w: %d", ErrIDConflict, id)
	} else if !errors.Is(err, ErrNotFound) {
		return Pokemon{}, fmt.Errorf("check id %d: %w", id, err)
	}

	types := make([]string, 0, len(in.Types))
	for _, t := range in.Types {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	created, err := s.repo.Create(ctx, Pokemon{
		ID:      id,
		Name:    name,
		Image:   in.Image,
		HP:      in.HP,
		Attack:  in.Attack,
		Defense: in.Defense,
		Speed:   in.Speed,
		Height:  in.Height,
		Weight:  in.Weight,
		Types:   types,
	})
	if err != nil {
		return Pokemon{}, fmt.Errorf("create pokemon: %w", err)
	}

	if dropped := len(types) - len(created.Types); dropped > 0 {
		s.log.Warn("unknown type names ignored on create", map[string]any{
			"id":        created.ID,
			"requested": types,
			"stored":    created.Types,
		})
	}
	return created, nil
}
