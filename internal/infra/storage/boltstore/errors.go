package boltstore

import "errors"

var (
	// ErrBucketMissing возвращается, если файл базы не содержит нужных бакетов
	ErrBucketMissing = errors.New("bolt.backend: bucket missing")
	// ErrInvalidRecord возвращается при ошибке разбора записи
	ErrInvalidRecord = errors.New("bolt.backend: invalid record")
)
