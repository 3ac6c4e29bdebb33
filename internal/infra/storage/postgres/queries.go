package postgres

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/psqlbuilder"
)

const (
	reservationsTable = "reservations"
	transactionsTable = "transactions"
)

var reservationColumns = []string{
	"id",
	"customer_id",
	"resource",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
	"created_on",
	"total_cost",
	"down_payment",
	"discount_percent",
}

var transactionColumns = []string{
	"id",
	"type",
	"date",
	"amount",
	"res_id",
	"res_customer_id",
	"res_resource",
	"res_start_date",
	"res_end_date",
	"res_start_time",
	"res_end_time",
	"res_created_on",
	"res_total_cost",
	"res_down_payment",
	"res_discount_percent",
}

func reservationValues(r *domain.Reservation) []interface{} {
	return []interface{}{
		r.ID,
		r.CustomerID,
		string(r.Kind),
		r.StartDate,
		r.EndDate,
		r.StartTime.String(),
		r.EndTime.String(),
		r.CreatedOn,
		r.TotalCost,
		r.DownPayment,
		r.DiscountPercent,
	}
}

// maxBindParams предел параметров одного запроса в протоколе PostgreSQL
const maxBindParams = 65535

// statement готовый SQL с аргументами
type statement struct {
	query string
	args  []interface{}
}

// chunkRows число строк в одном INSERT, чтобы не превысить maxBindParams
func chunkRows(columns int) int {
	return maxBindParams / columns
}

// insertReservationsQueries строит многострочные INSERT пачками;
// пустой срез, если вставлять нечего
func insertReservationsQueries(rs []domain.Reservation) ([]statement, error) {
	var stmts []statement
	step := chunkRows(len(reservationColumns))
	for from := 0; from < len(rs); from += step {
		to := min(from+step, len(rs))
		q := psqlbuilder.Insert(reservationsTable).Columns(reservationColumns...)
		for i := from; i < to; i++ {
			q = q.Values(reservationValues(&rs[i])...)
		}
		query, args, err := q.ToSql()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, statement{query: query, args: args})
	}
	return stmts, nil
}

func insertTransactionsQueries(ts []domain.Transaction) ([]statement, error) {
	var stmts []statement
	step := chunkRows(len(transactionColumns))
	for from := 0; from < len(ts); from += step {
		to := min(from+step, len(ts))
		q := psqlbuilder.Insert(transactionsTable).Columns(transactionColumns...)
		for i := from; i < to; i++ {
			t := &ts[i]
			values := append([]interface{}{t.ID, string(t.Type), t.Date, t.Amount}, reservationValues(&t.Reservation)...)
			q = q.Values(values...)
		}
		query, args, err := q.ToSql()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, statement{query: query, args: args})
	}
	return stmts, nil
}

func selectReservationsQuery() (string, []interface{}, error) {
	return psqlbuilder.Select(reservationColumns...).
		From(reservationsTable).
		OrderBy("id").
		ToSql()
}

func selectTransactionsQuery() (string, []interface{}, error) {
	return psqlbuilder.Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("id").
		ToSql()
}

func deleteAllQuery(table string) (string, []interface{}, error) {
	return psqlbuilder.Delete(table).ToSql()
}

// lockTablesQuery не дает второму процессу писать одновременно
func lockTablesQuery() string {
	return "LOCK TABLE " + reservationsTable + ", " + transactionsTable + " IN EXCLUSIVE MODE"
}

