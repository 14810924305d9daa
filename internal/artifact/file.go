package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore writes artifacts to a local directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "artifacts"
	}
	return &FileStore{dir: dir}
}

// Save writes data to {dir}/{name} and returns the path. The media type
// is not recorded; the filename extension carries it.
func (s *FileStore) Save(_ context.Context, name string, data []byte, _ string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact dir: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return path, nil
}
