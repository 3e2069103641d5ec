package types

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pokemon-catalog/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo   Repository
	remote Remote
	log    logger.Logger
}

func NewService(repo Repository, remote Remote, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		remote: remote,
		log:    log.With(map[string]any{"component": "types"}),
	}
}

// Sync copia los tipos remotos al vocabulario local. Es best-effort: los
// errores se loguean y no se devuelven, el arranque sigue igual.
// Devuelve cuántos nombres quedaron sincronizados.
func (s *Service) Sync(ctx context.Context) int {
	names, err := s.remote.ListTypeNames(ctx)
	if err != nil {
		// Lo que llegó antes del error se guarda igual.
		s.log.Error("fetch remote types failed", map[string]any{"err": err, "partial": len(names)})
	}

	synced := 0
	for _, name := range names {
		if _, err := s.FindOrCreate(ctx, name); err != nil {
			s.log.Error("store type failed", map[string]any{"name": name, "err": err})
			continue
		}
		synced++
	}

	s.log.Info("types synced", map[string]any{"remote": len(names), "synced": synced})
	return synced
}

func (s *Service) FindOrCreate(ctx context.Context, name string) (Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Type{}, ErrInvalidInput
	}

	t, err := s.repo.FindOrCreate(ctx, Type{ID: uuid.NewString(), Name: name})
	if err != nil {
		return Type{}, fmt.Errorf("find or create type %q: %w", name, err)
	}
	return t, nil
}

// ListNames devuelve los nombres del vocabulario local.
func (s *Service) ListNames(ctx context.Context) ([]string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}

	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.Name)
	}
	return out, nil
}
