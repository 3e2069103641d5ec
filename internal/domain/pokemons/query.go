package pokemons

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

// SortOrder define el sentido del ordenamiento.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// SortField es el conjunto cerrado de campos ordenables.
type SortField string

const (
	SortByID      SortField = "id"
	SortByName    SortField = "name"
	SortByHP      SortField = "hp"
	SortByAttack  SortField = "attack"
	SortByDefense SortField = "defense"
	SortBySpeed   SortField = "speed"
	SortByHeight  SortField = "height"
	SortByWeight  SortField = "weight"
)

var comparators = map[SortField]func(a, b Pokemon) int{
	SortByID:      func(a, b Pokemon) int { return cmp.Compare(a.ID, b.ID) },
	SortByName:    func(a, b Pokemon) int { return strings.Compare(a.Name, b.Name) },
	SortByHP:      func(a, b Pokemon) int { return cmp.Compare(a.HP, b.HP) },
	SortByAttack:  func(a, b Pokemon) int { return cmp.Compare(a.Attack, b.Attack) },
	SortByDefense: func(a, b Pokemon) int { return cmp.Compare(a.Defense, b.Defense) },
	SortBySpeed:   func(a, b Pokemon) int { return cmp.Compare(a.Speed, b.Speed) },
	SortByHeight:  func(a, b Pokemon) int { return cmp.Compare(a.Height, b.Height) },
	SortByWeight:  func(a, b Pokemon) int { return cmp.Compare(a.Weight, b.Weight) },
}

// ParseSortField devuelve el campo y true si es conocido; si no, SortByID y false.
func ParseSortField(s string) (SortField, bool) {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := comparators[f]; ok {
		return f, true
	}
	return SortByID, false
}

// ParseSortOrder: "desc" (sin importar mayúsculas) => Desc, cualquier otra cosa => Asc.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// Query son los parámetros ya normalizados del listado.
type Query struct {
	Types  []string
	Name   string
	Order  SortOrder
	SortBy SortField
	Limit  int
	Offset int
}

// RawQuery son los parámetros tal cual llegan por query string.
type RawQuery struct {
	FilterTypes string // CSV
	FilterName  string
	SortOrder   string
	SortBy      string
	Limit       string
	Offset      string
}

// Normalize aplica defaults: limit inválido o <= 0 => 20, offset inválido o < 0 => 0,
// sortBy desconocido => id.
func (r RawQuery) Normalize() Query {
	q := Query{
		Name:   strings.TrimSpace(r.FilterName),
		Order:  ParseSortOrder(r.SortOrder),
		Limit:  parsePositive(r.Limit, DefaultLimit, false),
		Offset: parsePositive(r.Offset, DefaultOffset, true),
	}
	q.SortBy, _ = ParseSortField(r.SortBy)

	for _, t := range strings.Split(r.FilterTypes, ",") {
		if t = strings.TrimSpace(t); t != "" {
			q.Types = append(q.Types, t)
		}
	}
	return q
}

func parsePositive(s string, def int, allowZero bool) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || (n == 0 && !allowZero) {
		return def
	}
	return n
}

// EqualFold compara sin distinguir mayúsculas (case folding Unicode).
func EqualFold(a, b string) bool {
	// Un Caser guarda estado: uno por llamada.
	c := cases.Fold()
	return c.String(a) == c.String(b)
}

// Filter conserva los pokemons que tengan al menos uno de typeNames (si se
// pasó alguno) y cuyo nombre contenga name (si se pasó). Siempre devuelve un
// slice nuevo.
func Filter(items []Pokemon, typeNames []string, name string) []Pokemon {
	fold := cases.Fold()

	wanted := make(map[string]struct{}, len(typeNames))
	for _, t := range typeNames {
		wanted[fold.String(t)] = struct{}{}
	}
	needle := fold.String(name)

	out := make([]Pokemon, 0, len(items))
	for _, p := range items {
		if len(wanted) > 0 && !hasAnyType(fold, p, wanted) {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasAnyType(fold cases.Caser, p Pokemon, wanted map[string]struct{}) bool {
	for _, t := range p.Types {
		if _, ok := wanted[fold.String(t)]; ok {
			return true
		}
	}
	return false
}

// Sort ordena una copia de items por field en el sentido order. Es estable:
// los empates conservan el orden de entrada. Un field desconocido ordena por id.
func Sort(items []Pokemon, order SortOrder, field SortField) []Pokemon {
	compare, ok := comparators[field]
	if !ok {
		compare = comparators[SortByID]
	}

	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Pokemon) int {
		if order == Desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}

// Paginate devuelve items[offset:offset+limit] recortado al largo disponible.
func Paginate(items []Pokemon, limit, offset int) []Pokemon {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(items) {
		return []Pokemon{}
	}
	// Sin sumar offset+limit: limit puede venir cerca de MaxInt.
	if rest := len(items) - offset; limit > rest {
		limit = rest
	}
	return items[offset : offset+limit]
}

// ListResult es una página más el total filtrado (antes de paginar).
type ListResult struct {
	Total int
	Items []Pokemon
}

// Apply corre el pipeline completo: filtro, orden y paginado, en ese orden.
func Apply(items []Pokemon, q Query) ListResult {
	filtered := Filter(items, q.Types, q.Name)
	sorted := Sort(filtered, q.Order, q.SortBy)
	return ListResult{
		Total: len(filtered),
		Items: Paginate(sorted, q.Limit, q.Offset),
	}
}
