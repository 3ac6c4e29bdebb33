package get_available_slots

import "errors"

var (
	// ErrResourceNotFound возвращается для неизвестного вида ресурса
	ErrResourceNotFound = errors.New("get_available_slots: resource not found")

	// ErrInvalidDate возвращается, когда дата уже прошла
	ErrInvalidDate = errors.New("get_available_slots: date already passed")

	// ErrDateTooFarInFuture возвращается, когда дата за горизонтом бронирования
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
