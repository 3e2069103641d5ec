package memory

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"pokemon-catalog/internal/domain/types"
)

// TypeRepo guarda el vocabulario indexado por nombre.
type TypeRepo struct {
	mu     sync.RWMutex
	byName map[string]types.Type
}

func NewTypeRepo() *TypeRepo {
	return &TypeRepo{
		byName: make(map[string]types.Type),
	}
}

func (r *TypeRepo) FindOrCreate(ctx context.Context, t types.Type) (types.Type, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.Name) == "" {
		return types.Type{}, errors.New("type name required")
	}
	if existing, ok := r.byName[t.Name]; ok {
		return existing, nil
	}
	if strings.TrimSpace(t.ID) == "" {
		return types.Type{}, errors.New("type id required")
	}
	r.byName[t.Name] = t
	return t, nil
}

// List devuelve los tipos ordenados por nombre, igual que los stores SQL.
func (r *TypeRepo) List(ctx context.Context) ([]types.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.Type, 0, len(r.byName))
	for _, t := range r.byName {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b types.Type) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

// has responde si name existe en el vocabulario (match exacto).
func (r *TypeRepo) has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]
	return ok
}
