package pricing

import "errors"

var (
	// ErrUnknownResource возвращается для ресурса, которого нет в каталоге
	ErrUnknownResource = errors.New("pricing: unknown resource")
)
