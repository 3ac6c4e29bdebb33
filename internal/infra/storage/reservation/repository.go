package reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
)

// Repository репозиторий живых бронирований
type Repository struct {
	states Snapshotter
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(states Snapshotter) *Repository {
	return &Repository{states: states}
}

// Create присваивает бронированию следующий id и добавляет его в хранилище.
// Требует активной сериализуемой транзакции в контексте.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	s, err := state.Writable(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrTransaction, err)
	}

	res.ID = s.NextReservationID()
	s.Reservations = append(s.Reservations, *res)

	created := *res
	return &created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	s := state.GetState(ctx, r.states)
	for i := range s.Reservations {
		if s.Reservations[i].ID == id {
			found := s.Reservations[i]
			return &found, nil
		}
	}
	return nil, ErrReservationNotFound
}

// Delete удаляет бронирование и возвращает удаленную копию
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.Reservation, error) {
	s, err := state.Writable(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Delete: %v", ErrTransaction, err)
	}

	for i := range s.Reservations {
		if s.Reservations[i].ID != id {
			continue
		}
		removed := s.Reservations[i]
		// новый срез, чтобы не задеть массив зафиксированного снимка
		rest := make([]domain.Reservation, 0, len(s.Reservations)-1)
		rest = append(rest, s.Reservations[:i]...)
		rest = append(rest, s.Reservations[i+1:]...)
		s.Reservations = rest
		return &removed, nil
	}
	return nil, ErrReservationNotFound
}

// List возвращает все живые бронирования в порядке id
func (r *Repository) List(ctx context.Context) ([]domain.Reservation, error) {
	s := state.GetState(ctx, r.states)
	out := make([]domain.Reservation, len(s.Reservations))
	copy(out, s.Reservations)
	return out, nil
}

// ListByFilter возвращает бронирования, начинающиеся в окне фильтра
func (r *Repository) ListByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]domain.Reservation, error) {
	s := state.GetState(ctx, r.states)
	out := make([]domain.Reservation, 0)
	for i := range s.Reservations {
		if filter.Match(&s.Reservations[i]) {
			out = append(out, s.Reservations[i])
		}
	}
	return out, nil
}
