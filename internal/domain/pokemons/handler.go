package pokemons

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pokemon-catalog/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/api/pokemons", func(pr chi.Router) {
		pr.Get("/", listPokemonsHandler(svc, log))
		pr.Post("/create", createPokemonHandler(svc, log))
		pr.Get("/{id}", getPokemonHandler(svc, log))
	})
}

// listPokemonsResponse es la página pedida más el total filtrado sin paginar.
type listPokemonsResponse struct {
	NumTotalFilteredPokemons int       `json:"numTotalFilteredPokemons"`
	Pokemons                 []Pokemon `json:"pokemons"`
}

// createPokemonRequest es el cuerpo para crear un pokemon (sin id).
type createPokemonRequest struct {
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

type errorResponse struct {
	Message string `json:"message"`
}

// listPokemonsHandler godoc
// @Summary Listar pokemons
// @Description Une los pokemons de la API remota y los creados localmente, y aplica filtro, orden y paginado (en ese orden).
// @Tags pokemons
// @Produce json
// @Param filterTypes query string false "Tipos separados por coma; alcanza con que coincida uno"
// @Param filterName query string false "Substring del nombre, sin distinguir mayúsculas"
// @Param sortOrder query string false "asc | desc" default(asc)
// @Param sortBy query string false "id | name | hp | attack | defense | speed | height | weight" default(id)
// @Param limit query int false "Tamaño de página" default(20)
// @Param offset query int false "Desplazamiento" default(0)
// @Success 200 {object} listPokemonsResponse
// @Failure 500 {object} errorResponse
// @Router /pokemons [get]
func listPokemonsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := r.URL.Query()
		q := RawQuery{
			FilterTypes: v.Get("filterTypes"),
			FilterName:  v.Get("filterName"),
			SortOrder:   v.Get("sortOrder"),
			SortBy:      v.Get("sortBy"),
			Limit:       v.Get("limit"),
			Offset:      v.Get("offset"),
		}.Normalize()

		res, err := svc.List(r.Context(), q)
		if err != nil {
			log.Error("list pokemons failed", map[string]any{"err": err})
			writeError(w, http.StatusInternalServerError, "error processing request")
			return
		}

		writeJSON(w, http.StatusOK, listPokemonsResponse{
			NumTotalFilteredPokemons: res.Total,
			Pokemons:                 res.Items,
		})
	}
}

// getPokemonHandler godoc
// @Summary Obtener un pokemon
// @Description IDs mayores al máximo remoto se buscan en el store local; el resto en la API remota.
// @Tags pokemons
// @Produce json
// @Param id path int true "ID del pokemon"
// @Success 200 {object} Pokemon
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pokemons/{id} [get]
func getPokemonHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "no pokemon exists with the given id")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "no pokemon exists with the given id")
				return
			}
			log.Error("get pokemon failed", map[string]any{"id": id, "err": err})
			writeError(w, http.StatusInternalServerError, "error processing request")
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

// createPokemonHandler godoc
// @Summary Crear pokemon
// @Description Crea un pokemon en el store local con id = max(id)+1. Los tipos que no existen en el vocabulario se ignoran.
// @Tags pokemons
// @Accept json
// @Produce json
// @Param payload body createPokemonRequest true "Datos del pokemon"
// @Success 201 {object} Pokemon
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pokemons/create [post]
func createPokemonHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPokemonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Image:   req.Image,
			HP:      req.HP,
			Attack:  req.Attack,
			Defense: req.Defense,
			Speed:   req.Speed,
			Height:  req.Height,
			Weight:  req.Weight,
			Types:   req.Types,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrDuplicateName):
				writeError(w, http.StatusConflict, "error creating pokemon: name already in use")
			default:
				log.Error("create pokemon failed", map[string]any{"name": req.Name, "err": err})
				writeError(w, http.StatusInternalServerError, "error creating pokemon")
			}
			return
		}

		writeJSON(w, http.StatusCreated, p)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}
