package create_reservation

// Request модель запроса на создание бронирования.
// Даты в формате mm-dd-yyyy, время HH:MM.
type Request struct {
	CustomerID string
	Resource   string
	StartDate  string
	EndDate    *string // по умолчанию равна StartDate
	StartTime  string
	EndTime    *string // по умолчанию StartTime + 30 минут
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationID   int64
	DiscountPercent int
	TotalCost       float64
	DownPayment     float64
}
