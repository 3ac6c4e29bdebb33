package transaction

import "errors"

var (
	// ErrTransaction возвращается при записи вне сериализуемой транзакции
	ErrTransaction = errors.New("transaction.repository: transaction error")
)
