package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotExist is returned by Backend.Load when a document was never saved.
var ErrNotExist = errors.New("document does not exist")

// Backend loads and saves whole documents by name.
type Backend interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}

// ============================================================================
// FILE BACKEND
// ============================================================================

// FileBackend keeps one file per document inside Dir.
type FileBackend struct {
	Dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{Dir: dir}
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.Dir, name)
}

func (b *FileBackend) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func (b *FileBackend) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(b.path(name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// ============================================================================
// MEMORY BACKEND
// ============================================================================

// MemoryBackend keeps documents in a map. Its zero value is ready to use.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(ctx context.Context, name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.docs[name]
	if !ok {
		return nil, ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (b *MemoryBackend) Save(ctx context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.docs == nil {
		b.docs = make(map[string][]byte)
	}
	b.docs[name] = append([]byte(nil), data...)
	return nil
}
