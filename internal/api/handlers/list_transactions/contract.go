package list_transactions

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/reports/models"
)

type ReportService interface {
	ListTransactions(ctx context.Context, req *models.ListTransactionsRequest) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
