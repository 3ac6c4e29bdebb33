package file

import "errors"

var (
	// ErrInvalidRecord возвращается при разборе некорректной строки файла
	ErrInvalidRecord = errors.New("file.backend: invalid record")
)
