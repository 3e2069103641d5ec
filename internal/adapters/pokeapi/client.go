package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pokemon-catalog/internal/domain/pokemons"
	"pokemon-catalog/internal/platform/httpclient"
)

// PageSize es el tamaño de página que pedimos al listado remoto.
const PageSize = 100

var (
	ErrNotConfigured = errors.New("pokeapi client not configured")
	ErrBadPayload    = errors.New("pokeapi unexpected payload")
)

type Config struct {
	// BaseURL, p.ej. https://pokeapi.co/api/v2
	BaseURL string
	Timeout time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

// Client implementa pokemons.Remote y types.Remote contra PokeAPI.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithTransport(cfg.BaseURL, cfg.Timeout, cfg.Transport)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listResponse struct {
	Results []namedResource `json:"results"`
	Next    *string         `json:"next"`
}

type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		Other map[string]struct {
			FrontDefault *string `json:"front_default"`
		} `json:"other"`
	} `json:"sprites"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Types []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
}

// ListPage trae una página del listado. pageURL vacío => primera página.
func (c *Client) ListPage(ctx context.Context, pageURL string) (pokemons.ListPage, error) {
	if pageURL == "" {
		pageURL = fmt.Sprintf("/pokemon?limit=%d", PageSize)
	}

	var resp listResponse
	if err := c.http.GetJSON(ctx, pageURL, &resp); err != nil {
		return pokemons.ListPage{}, mapErr(err)
	}

	page := pokemons.ListPage{Items: make([]pokemons.ResourceRef, 0, len(resp.Results))}
	for _, r := range resp.Results {
		page.Items = append(page.Items, pokemons.ResourceRef{Name: r.Name, URL: r.URL})
	}
	if resp.Next != nil {
		page.Next = *resp.Next
	}
	return page, nil
}

// GetPokemon trae el detalle por URL absoluta o por ID y lo normaliza.
func (c *Client) GetPokemon(ctx context.Context, ref string) (pokemons.Pokemon, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return pokemons.Pokemon{}, pokemons.ErrNotFound
	}
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		ref = "/pokemon/" + ref
	}

	var resp pokemonResponse
	if err := c.http.GetJSON(ctx, ref, &resp); err != nil {
		return pokemons.Pokemon{}, mapErr(err)
	}

	p, err := normalize(resp)
	if err != nil {
		return pokemons.Pokemon{}, fmt.Errorf("%w: %s: %v", pokemons.ErrUpstream, ref, err)
	}
	return p, nil
}

// ListTypeNames recorre el listado de tipos completo. Si falla una página
// devuelve el error junto con los nombres de las páginas anteriores.
func (c *Client) ListTypeNames(ctx context.Context) ([]string, error) {
	next := fmt.Sprintf("/type?limit=%d", PageSize)
	names := make([]string, 0)

	for next != "" {
		var resp listResponse
		if err := c.http.GetJSON(ctx, next, &resp); err != nil {
			return names, mapErr(err)
		}
		for _, r := range resp.Results {
			names = append(names, r.Name)
		}

		next = ""
		if resp.Next != nil {
			next = *resp.Next
		}
	}
	return names, nil
}

// normalize lleva el detalle remoto a la forma canónica. Los stats se buscan
// por nombre, no por posición.
func normalize(r pokemonResponse) (pokemons.Pokemon, error) {
	if r.ID <= 0 || strings.TrimSpace(r.Name) == "" {
		return pokemons.Pokemon{}, fmt.Errorf("%w: missing id or name", ErrBadPayload)
	}

	stats := make(map[string]int, len(r.Stats))
	for _, s := range r.Stats {
		stats[s.Stat.Name] = s.BaseStat
	}
	for _, name := range []string{"hp", "attack", "defense", "speed"} {
		if _, ok := stats[name]; !ok {
			return pokemons.Pokemon{}, fmt.Errorf("%w: missing stat %q", ErrBadPayload, name)
		}
	}

	typeNames := make([]string, 0, len(r.Types))
	for _, t := range r.Types {
		typeNames = append(typeNames, t.Type.Name)
	}

	return pokemons.Pokemon{
		ID:      r.ID,
		Name:    r.Name,
		Image:   r.Sprites.Other["official-artwork"].FrontDefault,
		HP:      stats["hp"],
		Attack:  stats["attack"],
		Defense: stats["defense"],
		Speed:   stats["speed"],
		Height:  r.Height,
		Weight:  r.Weight,
		Types:   typeNames,
	}, nil
}

// mapErr traduce errores HTTP a los del dominio: 404 => ErrNotFound, el
// resto => ErrUpstream.
func mapErr(err error) error {
	if httpclient.StatusCode(err) == http.StatusNotFound {
		return fmt.Errorf("%w: %v", pokemons.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", pokemons.ErrUpstream, err)
}
