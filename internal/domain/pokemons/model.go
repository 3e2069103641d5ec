package pokemons

// Pokemon es el registro canónico. Los que vienen de la API remota y los
// creados localmente tienen exactamente la misma forma; solo el ID indica
// el origen (ver Service.GetByID).
type Pokemon struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Image   *string  `json:"image"`
	HP      int      `json:"hp"`
	Attack  int      `json:"attack"`
	Defense int      `json:"defense"`
	Speed   int      `json:"speed"`
	Height  int      `json:"height"`
	Weight  int      `json:"weight"`
	Types   []string `json:"types"`
}

// ResourceRef es un item del listado paginado remoto.
type ResourceRef struct {
	Name string
	URL  string
}

// ListPage es una página del listado remoto. Next vacío => última página.
type ListPage struct {
	Items []ResourceRef
	Next  string
}
