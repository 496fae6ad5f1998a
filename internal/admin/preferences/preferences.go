// Package preferences holds the two persisted console preferences and the
// stores that keep them.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Storage keys.
const (
	KeyLanguage     = "language"
	KeyPrimaryColor = "primaryColor"
)

// Defaults applied when nothing is stored.
const (
	DefaultLanguage     = "en"
	DefaultPrimaryColor = "#5a67d8"
)

// ErrNotFound is returned by stores for keys that were never written.
var ErrNotFound = errors.New("preferences: key not found")

// Store is client-local key/value storage.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Preferences is a snapshot of the persisted values.
type Preferences struct {
	Language     string
	PrimaryColor string
}

// Active is the live preference record for one client. It writes every
// change straight through to its store.
type Active struct {
	store  Store
	values Preferences
}

// Open reads the stored preferences, applying defaults for missing keys.
func Open(ctx context.Context, store Store) (*Active, error) {
	values := Preferences{Language: DefaultLanguage, PrimaryColor: DefaultPrimaryColor}
	if store == nil {
		store = NewMemoryStore()
	}

	for key, dst := range map[string]*string{
		KeyLanguage:     &values.Language,
		KeyPrimaryColor: &values.PrimaryColor,
	} {
		value, err := store.Get(ctx, key)
		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", key, err)
		case value != "":
			*dst = value
		}
	}

	return &Active{store: store, values: values}, nil
}

// Snapshot returns the current values.
func (a *Active) Snapshot() Preferences {
	return a.values
}

// Language returns the active language code.
func (a *Active) Language() string {
	return a.values.Language
}

// PrimaryColor returns the active theme colour.
func (a *Active) PrimaryColor() string {
	return a.values.PrimaryColor
}

// SetLanguage updates and persists the language.
func (a *Active) SetLanguage(ctx context.Context, code string) error {
	a.values.Language = code
	return a.store.Set(ctx, KeyLanguage, code)
}

// SetPrimaryColor updates and persists the theme colour.
func (a *Active) SetPrimaryColor(ctx context.Context, hex string) error {
	a.values.PrimaryColor = hex
	return a.store.Set(ctx, KeyPrimaryColor, hex)
}

// MemoryStore keeps preferences in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
