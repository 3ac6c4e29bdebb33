package state

import (
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// State is the whole shared mutable state: live reservations plus the ledger.
// Both slices are kept in id order.
type State struct {
	Reservations []domain.Reservation
	Transactions []domain.Transaction
}

// New returns an empty state
func New() *State {
	return &State{
		Reservations: []domain.Reservation{},
		Transactions: []domain.Transaction{},
	}
}

// Clone returns a deep copy; the committed snapshot is never written through.
func (s *State) Clone() *State {
	out := &State{
		Reservations: make([]domain.Reservation, len(s.Reservations)),
		Transactions: make([]domain.Transaction, len(s.Transactions)),
	}
	copy(out.Reservations, s.Reservations)
	copy(out.Transactions, s.Transactions)
	return out
}

// NextReservationID returns an id never used before, including ids of
// cancelled reservations that survive only in ledger snapshots.
func (s *State) NextReservationID() int64 {
	var maxID int64
	for i := range s.Reservations {
		if s.Reservations[i].ID > maxID {
			maxID = s.Reservations[i].ID
		}
	}
	for i := range s.Transactions {
		if s.Transactions[i].Reservation.ID > maxID {
			maxID = s.Transactions[i].Reservation.ID
		}
	}
	return maxID + 1
}

// NextTransactionID returns the next ledger id
func (s *State) NextTransactionID() int64 {
	var maxID int64
	for i := range s.Transactions {
		if s.Transactions[i].ID > maxID {
			maxID = s.Transactions[i].ID
		}
	}
	return maxID + 1
}

// Validate checks the invariants a loaded state must satisfy
func (s *State) Validate() error {
	seen := make(map[int64]struct{}, len(s.Reservations))
	for i := range s.Reservations {
		r := &s.Reservations[i]
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: duplicate reservation id %d", ErrCorruptState, r.ID)
		}
		seen[r.ID] = struct{}{}
		if err := validateReservation(r); err != nil {
			return fmt.Errorf("%w: reservation %d: %v", ErrCorruptState, r.ID, err)
		}
	}

	seenTx := make(map[int64]struct{}, len(s.Transactions))
	for i := range s.Transactions {
		t := &s.Transactions[i]
		if _, dup := seenTx[t.ID]; dup {
			return fmt.Errorf("%w: duplicate transaction id %d", ErrCorruptState, t.ID)
		}
		seenTx[t.ID] = struct{}{}
		if t.Type != domain.TransactionReservation && t.Type != domain.TransactionCancellation {
			return fmt.Errorf("%w: transaction %d has unknown type %q", ErrCorruptState, t.ID, t.Type)
		}
	}
	return nil
}

func validateReservation(r *domain.Reservation) error {
	if !r.Kind.IsKnown() {
		return fmt.Errorf("unknown resource kind %q", r.Kind)
	}
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("end date before start date")
	}
	if err := r.StartTime.Validate(); err != nil {
		return fmt.Errorf("start time: %v", err)
	}
	if err := r.EndTime.Validate(); err != nil {
		return fmt.Errorf("end time: %v", err)
	}
	return nil
}
