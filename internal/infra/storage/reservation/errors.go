package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrTransaction возвращается при записи вне сериализуемой транзакции
	ErrTransaction = errors.New("reservation.repository: transaction error")
)
