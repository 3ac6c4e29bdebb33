package transaction

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
)

// Repository репозиторий журнала транзакций; записи только добавляются
type Repository struct {
	states Snapshotter
}

// NewRepository создает новый экземпляр репозитория транзакций
func NewRepository(states Snapshotter) *Repository {
	return &Repository{states: states}
}

// Append присваивает транзакции следующий id и добавляет ее в журнал
func (r *Repository) Append(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	s, err := state.Writable(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Append: %v", ErrTransaction, err)
	}

	t.ID = s.NextTransactionID()
	s.Transactions = append(s.Transactions, *t)

	appended := *t
	return &appended, nil
}

// List возвращает весь журнал в порядке id
func (r *Repository) List(ctx context.Context) ([]domain.Transaction, error) {
	s := state.GetState(ctx, r.states)
	out := make([]domain.Transaction, len(s.Transactions))
	copy(out, s.Transactions)
	return out, nil
}

// ListByFilter возвращает транзакции с датой в окне фильтра
func (r *Repository) ListByFilter(ctx context.Context, filter domain.TransactionsFilter) ([]domain.Transaction, error) {
	s := state.GetState(ctx, r.states)
	out := make([]domain.Transaction, 0)
	for i := range s.Transactions {
		if filter.Match(&s.Transactions[i]) {
			out = append(out, s.Transactions[i])
		}
	}
	return out, nil
}
