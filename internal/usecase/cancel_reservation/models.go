package cancel_reservation

// Request модель запроса на отмену бронирования
type Request struct {
	ReservationID int64
}

// Response модель ответа с суммой возврата
type Response struct {
	ReservationID   int64
	PercentReturned int
	RefundAmount    float64
}
