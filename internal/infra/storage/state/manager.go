package state

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Backend persists the whole state. Save must be atomic: after a crash the
// backend holds either the previous or the new state, never a mix.
type Backend interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, s *State) error
	Name() string
}

// SaveObserver получает метрики сохранения состояния (опционально)
type SaveObserver interface {
	ObserveStateSave(driver string, d time.Duration, err error)
	SetStateSize(reservations, transactions int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Manager is the unit of work over State. A single process owns the backend:
// the state is loaded once at startup and every commit overwrites it.
//
// Writers are serialized by mu for the whole load-validate-mutate-persist
// cycle. Readers take the committed snapshot without locking.
type Manager struct {
	backend   Backend
	observer  SaveObserver
	logger    Logger
	mu        sync.Mutex
	committed atomic.Pointer[State]
}

// Option настраивает Manager
type Option func(*Manager)

// WithObserver подключает метрики сохранения
func WithObserver(o SaveObserver) Option {
	return func(m *Manager) {
		m.observer = o
	}
}

// NewManager загружает состояние из бэкенда и возвращает менеджер
func NewManager(ctx context.Context, backend Backend, logger Logger, opts ...Option) (*Manager, error) {
	m := &Manager{
		backend: backend,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(m)
	}

	loaded, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, backend.Name(), err)
	}
	if loaded == nil {
		loaded = New()
	}
	if err := loaded.Validate(); err != nil {
		return nil, err
	}

	m.committed.Store(loaded)
	m.reportSize(loaded)
	logger.Info("StateManager: loaded %d reservations and %d transactions from %s",
		len(loaded.Reservations), len(loaded.Transactions), backend.Name())

	return m, nil
}

// Snapshot returns the last committed state. Callers must not modify it.
func (m *Manager) Snapshot() *State {
	return m.committed.Load()
}

// DoSerializable runs fn against a private working copy while holding the
// writer lock. If fn succeeds the copy is persisted and published; otherwise
// it is discarded and the committed state is left untouched.
// Calls nested inside another DoSerializable join the outer transaction.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if t, ok := ctx.Value(txKey{}).(*tx); ok && t.writable {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	working := m.committed.Load().Clone()
	if err := fn(context.WithValue(ctx, txKey{}, &tx{state: working, writable: true})); err != nil {
		return err
	}

	started := time.Now()
	err := m.backend.Save(ctx, working)
	if m.observer != nil {
		m.observer.ObserveStateSave(m.backend.Name(), time.Since(started), err)
	}
	if err != nil {
		m.logger.Error("StateManager: failed to save state to %s: %v", m.backend.Name(), err)
		return fmt.Errorf("%w: %s: %v", ErrSave, m.backend.Name(), err)
	}

	m.committed.Store(working)
	m.reportSize(working)
	return nil
}

// DoReadOnly runs fn against the committed snapshot without the writer lock.
// Repository writes inside fn fail with ErrReadOnly.
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*tx); ok {
		return fn(ctx)
	}
	return fn(context.WithValue(ctx, txKey{}, &tx{state: m.committed.Load()}))
}

func (m *Manager) reportSize(s *State) {
	if m.observer != nil {
		m.observer.SetStateSize(len(s.Reservations), len(s.Transactions))
	}
}
