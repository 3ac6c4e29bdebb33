package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается mm-dd-yyyy"
	msgResourceNotFound  = "ресурс не найден"
	msgDateAlreadyPassed = "дата уже прошла"
	msgDateTooFar        = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resource}/available-slots
// Query params: date (required, mm-dd-yyyy)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resource := mux.Vars(r)["resource"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /resources/{resource}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Resource: resource, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{resource}/available-slots - Resource not found: resource=%s", resource)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /resources/{resource}/available-slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /resources/{resource}/available-slots - Date already passed: date=%s", date)
			handlers.RespondBadRequest(w, msgDateAlreadyPassed)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /resources/{resource}/available-slots - Date too far in future: date=%s", date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		default:
			h.logger.Error("GET /resources/{resource}/available-slots - Failed to get slots: resource=%s, date=%s, error=%v",
				resource, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{resource}/available-slots - Slots retrieved successfully: resource=%s, date=%s, slots_count=%d",
		result.Resource, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
