package pokemons

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"pokemon-catalog/internal/platform/logger"
)

const defaultConcurrency = 16

// RemoteCatalog trae el listado completo de la API remota una sola vez y lo
// mantiene en memoria durante toda la vida del proceso. No hay TTL ni
// invalidación: para refrescar hay que reiniciar.
type RemoteCatalog struct {
	remote      Remote
	log         logger.Logger
	concurrency int

	group singleflight.Group

	mu     sync.RWMutex
	loaded bool
	items  []Pokemon
	maxID  int
}

type CatalogOption func(*RemoteCatalog)

// WithConcurrency limita los detalles pedidos en paralelo por página.
func WithConcurrency(n int) CatalogOption {
	return func(c *RemoteCatalog) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func WithLogger(l logger.Logger) CatalogOption {
	return func(c *RemoteCatalog) {
		if l != nil {
			c.log = l
		}
	}
}

func NewRemoteCatalog(remote Remote, opts ...CatalogOption) *RemoteCatalog {
	c := &RemoteCatalog{
		remote:      remote,
		log:         logger.Nop(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(map[string]any{"component": "remote_catalog"})
	return c
}

// FetchAll devuelve el catálogo remoto. La primera llamada lo descarga; las
// siguientes no tocan la red. El slice devuelto es compartido: no modificarlo.
func (c *RemoteCatalog) FetchAll(ctx context.Context) ([]Pokemon, error) {
	if items, ok := c.cached(); ok {
		return items, nil
	}

	// Llamadas concurrentes antes de la primera carga comparten una sola pasada.
	_, err, _ := c.group.Do("catalog", func() (any, error) {
		if _, ok := c.cached(); ok {
			return nil, nil
		}
		items, err := c.load(ctx)
		if err != nil {
			return nil, err
		}
		c.store(items)
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := c.cached()
	return items, nil
}

// MaxRemoteID es el mayor ID visto en el catálogo remoto; 0 si está vacío o
// todavía no se cargó.
func (c *RemoteCatalog) MaxRemoteID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxID
}

func (c *RemoteCatalog) cached() ([]Pokemon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items, c.loaded
}

func (c *RemoteCatalog) store(items []Pokemon) {
	maxID := 0
	for _, p := range items {
		maxID = max(maxID, p.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.maxID = maxID
	c.loaded = true
}

// load recorre las páginas hasta que no haya "next". Un error de página corta
// la paginación pero conserva lo ya traído; un error de detalle solo descarta
// ese item. Solo un contexto cancelado hace fallar la carga.
func (c *RemoteCatalog) load(ctx context.Context) ([]Pokemon, error) {
	out := make([]Pokemon, 0)
	next := ""
	pages := 0

	for {
		page, err := c.remote.ListPage(ctx, next)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			c.log.Error("list page failed, stopping pagination", map[string]any{
				"page_url": next,
				"err":      err,
			})
			break
		}
		pages++

		details, err := c.fetchDetails(ctx, page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, details...)

		if page.Next == "" {
			break
		}
		next = page.Next
	}

	c.log.Info("remote catalog loaded", map[string]any{
		"pages": pages,
		"count": len(out),
	})
	return out, nil
}

// fetchDetails pide los detalles en paralelo y los devuelve en el orden del
// listado, no en el orden en que llegaron.
func (c *RemoteCatalog) fetchDetails(ctx context.Context, refs []ResourceRef) ([]Pokemon, error) {
	slots := make([]*Pokemon, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, ref := range refs {
		g.Go(func() error {
			p, err := c.remote.GetPokemon(gctx, ref.URL)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				c.log.Warn("pokemon detail failed, skipping", map[string]any{
					"name": ref.Name,
					"url":  ref.URL,
					"err":  err,
				})
				return nil
			}
			slots[i] = &p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Pokemon, 0, len(refs))
	for _, p := range slots {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}
