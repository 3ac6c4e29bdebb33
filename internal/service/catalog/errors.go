package catalog

import "errors"

var (
	// ErrResourceNotFound возвращается для неизвестного вида ресурса
	ErrResourceNotFound = errors.New("catalog: resource not found")
)
