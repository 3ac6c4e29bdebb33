package state

import "context"

type txKey struct{}

type tx struct {
	state    *State
	writable bool
}

// Snapshotter отдает последнее зафиксированное состояние
type Snapshotter interface {
	Snapshot() *State
}

// GetState возвращает состояние для чтения: рабочую копию из контекста
// транзакции, если она есть, иначе последний зафиксированный снимок.
// Возвращаемое значение нельзя изменять.
func GetState(ctx context.Context, fallback Snapshotter) *State {
	if t, ok := ctx.Value(txKey{}).(*tx); ok {
		return t.state
	}
	return fallback.Snapshot()
}

// Writable возвращает рабочую копию текущей сериализуемой транзакции
func Writable(ctx context.Context) (*State, error) {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok {
		return nil, ErrNoTransaction
	}
	if !t.writable {
		return nil, ErrReadOnly
	}
	return t.state, nil
}
