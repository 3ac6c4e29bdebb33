package list_transactions

import (
	"errors"
	"net/http"
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

// Handle GET /api/v1/transactions
// Query params: start_date, end_date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, to, err := handlers.ParseDateWindow(r.URL.Query(), h.now())
	if err != nil {
		h.logger.Warn("GET /transactions - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListTransactions(r.Context(), &models.ListTransactionsRequest{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidTimeRange):
			h.logger.Warn("GET /transactions - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /transactions - Failed to list transactions: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /transactions - Transactions retrieved successfully: count=%d", len(result.Transactions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
