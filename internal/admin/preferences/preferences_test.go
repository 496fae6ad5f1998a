package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenAppliesDefaults(t *testing.T) {
	t.Parallel()

	prefs, err := Open(context.Background(), NewMemoryStore())
	require.NoError(t, err)
	require.Equal(t, Preferences{Language: "en", PrimaryColor: "#5a67d8"}, prefs.Snapshot())
}

func TestActiveWritesThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	prefs, err := Open(ctx, store)
	require.NoError(t, err)
	require.NoError(t, prefs.SetLanguage(ctx, "id"))
	require.NoError(t, prefs.SetPrimaryColor(ctx, "#E53E3E"))

	value, err := store.Get(ctx, KeyPrimaryColor)
	require.NoError(t, err)
	require.Equal(t, "#E53E3E", value)

	reopened, err := Open(ctx, store)
	require.NoError(t, err)
	require.Equal(t, "id", reopened.Language())
	require.Equal(t, "#E53E3E", reopened.PrimaryColor())
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) { return "", errors.New("boom") }
func (brokenStore) Set(context.Context, string, string) error  { return errors.New("boom") }

func TestOpenPropagatesStoreErrors(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), brokenStore{})
	require.Error(t, err)
}

func TestDiskStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	store := NewDiskStore(dir)
	_, err := store.Get(ctx, KeyLanguage)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, KeyLanguage, "id"))
	require.Error(t, store.Set(ctx, "../escape", "x"))

	fresh := NewDiskStore(dir)
	prefs, err := Open(ctx, fresh)
	require.NoError(t, err)
	require.Equal(t, "id", prefs.Language())
	require.Equal(t, DefaultPrimaryColor, prefs.PrimaryColor())
	require.ElementsMatch(t, []string{KeyLanguage}, fresh.Keys(ctx))
}
