package reports

import "errors"

var (
	// ErrInvalidTimeRange возвращается, когда конец периода раньше начала
	ErrInvalidTimeRange = errors.New("reports: invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports: internal error")
)
