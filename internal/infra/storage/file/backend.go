package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
)

// Backend хранит состояние в текстовом файле и перезаписывает его целиком
// через временный файл и rename
type Backend struct {
	path  string
	rules domain.Rules
}

// NewBackend создает бэкенд; rules нужны для восстановления процента скидки
func NewBackend(path string, rules domain.Rules) *Backend {
	return &Backend{path: path, rules: rules}
}

func (b *Backend) Name() string {
	return "file"
}

// Load читает файл; отсутствующий файл означает пустое состояние
func (b *Backend) Load(_ context.Context) (*state.State, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return state.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", b.path, err)
	}

	s, err := Decode(bytes.NewReader(data), b.rules)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", b.path, err)
	}
	return s, nil
}

// Save атомарно заменяет файл новым содержимым
func (b *Backend) Save(_ context.Context, s *state.State) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// после успешного rename файла уже нет, ошибка игнорируется
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("rename %s: %w", b.path, err)
	}
	return nil
}
