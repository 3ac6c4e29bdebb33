package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/admission"
	createReservation "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if rej, ok := admission.AsRejection(err); ok {
			h.logger.Warn("POST /reservations - Rejected: customer_id=%s, resource=%s, rule=%s",
				req.CustomerID, req.Resource, rej.Rule)
			handlers.RespondRejection(w, rej)
			return
		}

		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: customer_id=%s, error=%v", req.CustomerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: customer_id=%s, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, customer_id=%s",
		result.ReservationID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
