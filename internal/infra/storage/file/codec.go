package file

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

const (
	// sentinel отделяет блок бронирований от блока транзакций
	sentinel = "#"

	// cancellationSep разделяет тип и сумму возврата: CANCELLATION$187.5
	cancellationSep = "$"

	reservationFields = 10
	transactionPrefix = 3
)

// Encode пишет состояние в построчном формате:
// бронирования, строка "#", транзакции
func Encode(w io.Writer, s *state.State) error {
	bw := bufio.NewWriter(w)

	for i := range s.Reservations {
		line, err := encodeReservation(&s.Reservations[i])
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(bw, sentinel); err != nil {
		return err
	}

	for i := range s.Transactions {
		t := &s.Transactions[i]
		detail, err := encodeReservation(&t.Reservation)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", t.ID, err)
		}
		typeToken := string(t.Type)
		if t.Type == domain.TransactionCancellation {
			typeToken += cancellationSep + formatAmount(t.Amount)
		}
		if _, err := fmt.Fprintf(bw, "%d %s %s %s\n", t.ID, typeToken, calendar.FormatDate(t.Date), detail); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Decode читает состояние; пустые строки пропускаются
func Decode(r io.Reader, rules domain.Rules) (*state.State, error) {
	s := state.New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inTransactions := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == sentinel {
			inTransactions = true
			continue
		}

		if !inTransactions {
			res, err := decodeReservation(fields, rules)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			s.Reservations = append(s.Reservations, res)
			continue
		}

		t, err := decodeTransaction(fields, rules)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		s.Transactions = append(s.Transactions, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return s, nil
}

func encodeReservation(r *domain.Reservation) (string, error) {
	if r.CustomerID == "" || strings.ContainsAny(r.CustomerID, " \t\r\n") {
		return "", fmt.Errorf("%w: customer id %q cannot be stored", ErrInvalidRecord, r.CustomerID)
	}
	return strings.Join([]string{
		strconv.FormatInt(r.ID, 10),
		r.CustomerID,
		string(r.Kind),
		calendar.FormatDate(r.StartDate),
		calendar.FormatDate(r.EndDate),
		r.StartTime.String(),
		r.EndTime.String(),
		calendar.FormatDate(r.CreatedOn),
		formatAmount(r.TotalCost),
		formatAmount(r.DownPayment),
	}, " "), nil
}

func decodeReservation(f []string, rules domain.Rules) (domain.Reservation, error) {
	if len(f) != reservationFields {
		return domain.Reservation{}, fmt.Errorf("%w: expected %d reservation fields, got %d",
			ErrInvalidRecord, reservationFields, len(f))
	}

	id, err := strconv.ParseInt(f[0], 10, 64)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: id %q", ErrInvalidRecord, f[0])
	}
	kind, ok := domain.ParseResourceKind(f[2])
	if !ok {
		return domain.Reservation{}, fmt.Errorf("%w: resource %q", ErrInvalidRecord, f[2])
	}

	startDate, err := calendar.ParseDate(f[3])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	endDate, err := calendar.ParseDate(f[4])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	startTime, err := types.NewTimeStringFromString(f[5])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: start time %q", ErrInvalidRecord, f[5])
	}
	endTime, err := types.NewTimeStringFromString(f[6])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: end time %q", ErrInvalidRecord, f[6])
	}
	createdOn, err := calendar.ParseDate(f[7])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	total, err := strconv.ParseFloat(f[8], 64)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: total cost %q", ErrInvalidRecord, f[8])
	}
	down, err := strconv.ParseFloat(f[9], 64)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: down payment %q", ErrInvalidRecord, f[9])
	}

	r := domain.Reservation{
		ID:          id,
		CustomerID:  f[1],
		Kind:        kind,
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   startTime,
		EndTime:     endTime,
		CreatedOn:   createdOn,
		TotalCost:   total,
		DownPayment: down,
	}
	// процент скидки не хранится в записи и восстанавливается по датам
	if calendar.DaysBetween(createdOn, startDate) >= rules.DiscountLeadDays {
		r.DiscountPercent = rules.DiscountPercent
	}
	return r, nil
}

func decodeTransaction(f []string, rules domain.Rules) (domain.Transaction, error) {
	if len(f) != transactionPrefix+reservationFields {
		return domain.Transaction{}, fmt.Errorf("%w: expected %d transaction fields, got %d",
			ErrInvalidRecord, transactionPrefix+reservationFields, len(f))
	}

	id, err := strconv.ParseInt(f[0], 10, 64)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: transaction id %q", ErrInvalidRecord, f[0])
	}
	date, err := calendar.ParseDate(f[2])
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	snapshot, err := decodeReservation(f[transactionPrefix:], rules)
	if err != nil {
		return domain.Transaction{}, err
	}

	t := domain.Transaction{
		ID:          id,
		Date:        date,
		Reservation: snapshot,
	}

	typeName, amount, hasAmount := strings.Cut(f[1], cancellationSep)
	t.Type = domain.TransactionType(typeName)
	switch {
	case hasAmount:
		refund, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: refund %q", ErrInvalidRecord, amount)
		}
		t.Amount = refund
	case t.Type == domain.TransactionCancellation:
		t.Amount = 0
	default:
		t.Amount = snapshot.DownPayment
	}

	return t, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
