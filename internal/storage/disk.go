package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes images under a local directory served at /media/.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(_ context.Context, filename, _ string, r io.Reader, _ int64) (string, error) {
	key := objectKey(filename)
	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return "/media/" + key, nil
}
