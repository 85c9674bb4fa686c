package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists processed upload bytes and returns the public URL to
// record on the owning entity.
type Store interface {
	Save(ctx context.Context, data []byte, contentType string) (string, error)
}

// NewName returns the stored object name for one upload.
func NewName(ext string) string {
	return uuid.NewString() + ext
}

// LocalStore writes uploads under a directory served at baseURL/uploads.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: baseURL}
}

func (s *LocalStore) Save(_ context.Context, data []byte, _ string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	name := NewName(".webp")
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/uploads/%s", s.BaseURL, name), nil
}
