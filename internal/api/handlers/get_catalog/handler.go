package get_catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/catalog"
)

const (
	msgResourceNotFound = "ресурс не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
// Публичный endpoint: ресурсы, тарифы, часы работы и правила
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to get catalog: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleResource GET /api/v1/catalog/{resource}
func (h *Handler) HandleResource(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["resource"]

	result, err := h.service.GetResource(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrResourceNotFound):
			h.logger.Warn("GET /catalog/{resource} - Resource not found: resource=%s", name)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("GET /catalog/{resource} - Failed to get resource: resource=%s, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
