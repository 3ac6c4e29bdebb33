package ledger

import "errors"

var (
	// ErrInternal возвращается при ошибке записи в журнал
	ErrInternal = errors.New("ledger: internal error")
)
