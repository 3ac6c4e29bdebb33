package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Backend хранит состояние в двух таблицах PostgreSQL.
// Save переписывает обе таблицы в одной SQL транзакции.
type Backend struct {
	db *sql.DB
}

// NewBackend создает бэкенд поверх открытого пула соединений
func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

func (b *Backend) Name() string {
	return "postgres"
}

// EnsureSchema создает таблицы, если их нет
func (b *Backend) EnsureSchema(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Load читает обе таблицы в порядке id
func (b *Backend) Load(ctx context.Context) (*state.State, error) {
	s := state.New()

	query, args, err := selectReservationsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build reservations query: %v", ErrBuildQuery, err)
	}
	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - select reservations: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec reservationRow
		if err := rows.Scan(rec.dest()...); err != nil {
			return nil, fmt.Errorf("%w: Load - reservation: %v", ErrScanRow, err)
		}
		r, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		s.Reservations = append(s.Reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - iterate reservations: %v", ErrExecQuery, err)
	}

	query, args, err = selectTransactionsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build transactions query: %v", ErrBuildQuery, err)
	}
	txRows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - select transactions: %v", ErrExecQuery, err)
	}
	defer txRows.Close()

	for txRows.Next() {
		var (
			id     int64
			typ    string
			date   time.Time
			amount float64
			rec    reservationRow
		)
		dest := append([]interface{}{&id, &typ, &date, &amount}, rec.dest()...)
		if err := txRows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: Load - transaction: %v", ErrScanRow, err)
		}
		snapshot, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		s.Transactions = append(s.Transactions, domain.Transaction{
			ID:          id,
			Type:        domain.TransactionType(typ),
			Date:        utcDate(date),
			Reservation: snapshot,
			Amount:      amount,
		})
	}
	if err := txRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - iterate transactions: %v", ErrExecQuery, err)
	}

	return s, nil
}

// Save заменяет содержимое таблиц одной транзакцией
func (b *Backend) Save(ctx context.Context, s *state.State) (err error) {
	tx, err := b.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, lockTablesQuery()); err != nil {
		return fmt.Errorf("%w: Save - lock tables: %v", ErrExecQuery, err)
	}

	for _, table := range []string{transactionsTable, reservationsTable} {
		query, args, buildErr := deleteAllQuery(table)
		if buildErr != nil {
			return fmt.Errorf("%w: Save - build delete %s: %v", ErrBuildQuery, table, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Save - delete %s: %v", ErrExecQuery, table, err)
		}
	}

	resStmts, buildErr := insertReservationsQueries(s.Reservations)
	if buildErr != nil {
		return fmt.Errorf("%w: Save - build insert reservations: %v", ErrBuildQuery, buildErr)
	}
	for _, st := range resStmts {
		if _, err = tx.ExecContext(ctx, st.query, st.args...); err != nil {
			return fmt.Errorf("%w: Save - insert reservations: %v", ErrExecQuery, err)
		}
	}

	txStmts, buildErr := insertTransactionsQueries(s.Transactions)
	if buildErr != nil {
		return fmt.Errorf("%w: Save - build insert transactions: %v", ErrBuildQuery, buildErr)
	}
	for _, st := range txStmts {
		if _, err = tx.ExecContext(ctx, st.query, st.args...); err != nil {
			return fmt.Errorf("%w: Save - insert transactions: %v", ErrExecQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}
	return nil
}

// reservationRow промежуточное представление строки для Scan
type reservationRow struct {
	id              int64
	customerID      string
	resource        string
	startDate       time.Time
	endDate         time.Time
	startTime       string
	endTime         string
	createdOn       time.Time
	totalCost       float64
	downPayment     float64
	discountPercent int
}

func (r *reservationRow) dest() []interface{} {
	return []interface{}{
		&r.id,
		&r.customerID,
		&r.resource,
		&r.startDate,
		&r.endDate,
		&r.startTime,
		&r.endTime,
		&r.createdOn,
		&r.totalCost,
		&r.downPayment,
		&r.discountPercent,
	}
}

func (r *reservationRow) toDomain() (domain.Reservation, error) {
	kind, ok := domain.ParseResourceKind(r.resource)
	if !ok {
		return domain.Reservation{}, fmt.Errorf("%w: unknown resource %q", ErrScanRow, r.resource)
	}
	startTime, err := types.NewTimeStringFromString(r.startTime)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: start time: %v", ErrScanRow, err)
	}
	endTime, err := types.NewTimeStringFromString(r.endTime)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: end time: %v", ErrScanRow, err)
	}

	return domain.Reservation{
		ID:              r.id,
		CustomerID:      r.customerID,
		Kind:            kind,
		StartDate:       utcDate(r.startDate),
		EndDate:         utcDate(r.endDate),
		StartTime:       startTime,
		EndTime:         endTime,
		CreatedOn:       utcDate(r.createdOn),
		TotalCost:       r.totalCost,
		DownPayment:     r.downPayment,
		DiscountPercent: r.discountPercent,
	}, nil
}

// utcDate приводит DATE из драйвера к полуночи UTC
func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
