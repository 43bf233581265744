package export

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyKey is returned when a store is given an empty key.
	ErrEmptyKey = errors.New("export: empty key")

	// ErrInvalidKey is returned for keys that escape the store root.
	ErrInvalidKey = errors.New("export: invalid key")
)

// Store receives exported files.
type Store interface {
	// Put stores body under key. Keys use forward slashes.
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// cleanKey normalizes key and rejects keys that leave the root.
func cleanKey(key string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", ErrEmptyKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", ErrInvalidKey
		}
	}
	return path.Clean(key), nil
}

// DiskStore writes exported files below a directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the root directory.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Put writes body to dir/key. The file is written to a temporary name
// first and renamed, so readers never see a partial page.
func (s *DiskStore) Put(ctx context.Context, key, contentType string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(dst), ".export-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(body); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
