package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	t.Parallel()

	catalog, err := LoadCatalog()
	require.NoError(t, err)
	require.Equal(t, []string{"en", "id"}, catalog.Languages())

	text, ok := catalog.Lookup("id", "orderText")
	require.True(t, ok)
	require.Equal(t, "Pesanan", text)

	text, ok = catalog.Lookup("en", "categoriesShowDescription")
	require.True(t, ok)
	require.Equal(t, "Show Description", text)
}

func TestLookupFallsBackToDefaultLanguagePerKey(t *testing.T) {
	t.Parallel()

	catalog, err := LoadCatalog()
	require.NoError(t, err)

	// The Indonesian table has no analytics headings; English fills the gap.
	require.Contains(t, catalog.MissingKeys("id"), "analyticsPageViews")
	text, ok := catalog.Lookup("id", "analyticsPageViews")
	require.True(t, ok)
	english, _ := catalog.Lookup("en", "analyticsPageViews")
	require.Equal(t, english, text)

	_, ok = catalog.Lookup("id", "noSuchKey")
	require.False(t, ok)
	require.Equal(t, "noSuchKey", catalog.Text("id", "noSuchKey"))
}

func TestEveryDefaultKeyResolvesInEveryLanguage(t *testing.T) {
	t.Parallel()

	catalog, err := LoadCatalog()
	require.NoError(t, err)

	for _, lang := range catalog.Languages() {
		for _, key := range catalog.Keys(DefaultLanguage) {
			text, ok := catalog.Lookup(lang, key)
			require.True(t, ok, "%s/%s", lang, key)
			if own, defined := catalog.tables[lang][key]; defined {
				require.Equal(t, own, text)
			} else {
				require.Equal(t, catalog.tables[DefaultLanguage][key], text)
			}
		}
		require.Empty(t, catalog.ExtraKeys(lang), lang)
	}
}

func TestResolveUnknownLanguage(t *testing.T) {
	t.Parallel()

	catalog, err := LoadCatalog()
	require.NoError(t, err)

	require.Equal(t, "id", catalog.Resolve("id"))
	require.Equal(t, "id", catalog.Resolve(" ID "))
	require.Equal(t, "en", catalog.Resolve("xx"))
	require.Equal(t, "en", catalog.Resolve(""))
}

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	catalog, err := LoadCatalog()
	require.NoError(t, err)

	require.Equal(t, "id", catalog.Match("id-ID,id;q=0.9,en;q=0.5"))
	require.Equal(t, "en", catalog.Match("fr-FR"))
	require.Equal(t, "en", catalog.Match(""))
}

func TestLoadCatalogFSRequiresDefaultLanguage(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/messages.id.toml": {Data: []byte(`hello = "Halo"` + "\n")},
	}
	_, err := LoadCatalogFS(fsys, "locales")
	require.ErrorIs(t, err, ErrDefaultLanguageMissing)

	fsys["locales/messages.en.toml"] = &fstest.MapFile{Data: []byte(`hello = "Hello"` + "\n")}
	catalog, err := LoadCatalogFS(fsys, "locales")
	require.NoError(t, err)
	require.Equal(t, "Halo", catalog.Text("id", "hello"))
}
