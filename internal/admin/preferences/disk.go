package preferences

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"

	"github.com/peterbourgon/diskv/v3"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// DiskStore persists preferences as one file per key under a base directory.
type DiskStore struct {
	d *diskv.Diskv
}

// NewDiskStore opens (or lazily creates) a store rooted at basePath.
func NewDiskStore(basePath string) *DiskStore {
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
	})}
}

// Get implements Store.
func (s *DiskStore) Get(_ context.Context, key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("preferences: invalid key %q", key)
	}
	if !s.d.Has(key) {
		return "", ErrNotFound
	}
	val, err := s.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return string(val), nil
}

// Set implements Store.
func (s *DiskStore) Set(_ context.Context, key, value string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("preferences: invalid key %q", key)
	}
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key.
func (s *DiskStore) Keys(ctx context.Context) []string {
	var keys []string
	for key := range s.d.KeysPrefix("", ctx.Done()) {
		keys = append(keys, key)
	}
	return keys
}
