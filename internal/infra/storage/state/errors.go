package state

import "errors"

var (
	// ErrNoTransaction возвращается при попытке записи вне DoSerializable
	ErrNoTransaction = errors.New("state: write outside of a serializable transaction")

	// ErrReadOnly возвращается при попытке записи внутри DoReadOnly
	ErrReadOnly = errors.New("state: transaction is read-only")

	// ErrCorruptState возвращается, когда загруженное состояние нарушает инварианты
	ErrCorruptState = errors.New("state: corrupt state")

	// ErrLoad возвращается при ошибке загрузки состояния из хранилища
	ErrLoad = errors.New("state: failed to load")

	// ErrSave возвращается при ошибке сохранения состояния в хранилище
	ErrSave = errors.New("state: failed to save")
)
