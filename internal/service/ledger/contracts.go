package ledger

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// TransactionRepository интерфейс журнала транзакций
type TransactionRepository interface {
	Append(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
