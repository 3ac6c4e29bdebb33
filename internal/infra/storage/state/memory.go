package state

import (
	"context"
	"sync"
)

// MemoryBackend keeps the state in process memory. Nothing survives a
// restart; it backs the "memory" storage driver and tests.
type MemoryBackend struct {
	mu      sync.Mutex
	saved   *State
	saves   int
	failErr error
}

func NewMemoryBackend(initial *State) *MemoryBackend {
	if initial == nil {
		initial = New()
	}
	return &MemoryBackend{saved: initial.Clone()}
}

func (b *MemoryBackend) Load(_ context.Context) (*State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saved.Clone(), nil
}

func (b *MemoryBackend) Save(_ context.Context, s *State) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failErr != nil {
		return b.failErr
	}
	b.saved = s.Clone()
	b.saves++
	return nil
}

func (b *MemoryBackend) Name() string {
	return "memory"
}

// Saves returns how many times the state was persisted
func (b *MemoryBackend) Saves() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saves
}

// FailWith makes every following Save return err (nil restores normal saves)
func (b *MemoryBackend) FailWith(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failErr = err
}
