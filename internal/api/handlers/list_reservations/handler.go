package list_reservations

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reports"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reports/models"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается mm-dd-yyyy"
	msgInvalidTimeRange = "конец периода раньше начала"
)

type Handler struct {
	service ReportService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/reservations
// Query params: start_date, end_date, customer_id (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, to, err := handlers.ParseDateWindow(q, h.now())
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.ListReservationsRequest{From: from, To: to}
	if customerID := strings.TrimSpace(q.Get("customer_id")); customerID != "" {
		req.CustomerID = &customerID
	}

	result, err := h.service.ListReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidTimeRange):
			h.logger.Warn("GET /reservations - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: count=%d", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
