package types

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pokemon-catalog/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	r.Get("/api/types", listTypesHandler(svc, log))
}

type errorResponse struct {
	Message string `json:"message"`
}

// listTypesHandler godoc
// @Summary Listar tipos
// @Description Devuelve los nombres del vocabulario local de tipos (sincronizado con la API remota al arrancar).
// @Tags types
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} errorResponse
// @Router /types [get]
func listTypesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.ListNames(r.Context())
		if err != nil {
			log.Error("list types failed", map[string]any{"err": err})
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "error fetching types"})
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
