package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each key as a text file under a data directory.
// It mirrors the native-client file bridge: the transport is text-only,
// so callers hand it an already-serialized value.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}
	return &FileStore{
		dir: dir,
	}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".txt")
}

func (s *FileStore) Write(ctx context.Context, key string, value string) error {
	// write to a temp file and rename so a crash mid-write cannot
	// leave a truncated save behind
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %v", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace save file: %v", err)
	}
	return nil
}

func (s *FileStore) Read(ctx context.Context, key string) (string, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ErrNotFound{}
		}
		return "", fmt.Errorf("failed to read save file: %v", err)
	}
	return string(b), nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read data directory: %v", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %v", entry.Name(), err)
		}
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
