package postgres

import "errors"

var (
	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("postgres.backend: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("postgres.backend: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("postgres.backend: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("postgres.backend: failed to scan row")
)
