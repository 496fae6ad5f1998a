// Package i18n loads the console's language catalog and applies it to live
// documents.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// DefaultLanguage is the language every lookup falls back to.
const DefaultLanguage = "en"

//go:embed locales/*.toml
var localeFS embed.FS

// ErrDefaultLanguageMissing indicates the catalog has no table for DefaultLanguage.
var ErrDefaultLanguageMissing = errors.New("i18n: default language table missing")

// StringTable maps translation keys to localized text for one language.
type StringTable map[string]string

// Catalog is the immutable set of string tables keyed by language code.
type Catalog struct {
	tables    map[string]StringTable
	languages []string
	matcher   language.Matcher
}

// LoadCatalog loads the embedded message files.
func LoadCatalog() (*Catalog, error) {
	return LoadCatalogFS(localeFS, "locales")
}

// MustLoadCatalog is LoadCatalog for process start-up.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// LoadCatalogFS parses every messages.<lang>.toml file in dir.
func LoadCatalogFS(fsys fs.FS, dir string) (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locale dir: %w", err)
	}

	tables := make(map[string]StringTable)
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".toml" {
			continue
		}
		name := path.Join(dir, entry.Name())
		buf, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		file, err := bundle.ParseMessageFileBytes(buf, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}

		code := baseCode(file.Tag)
		table, ok := tables[code]
		if !ok {
			table = make(StringTable, len(file.Messages))
			tables[code] = table
		}
		for _, msg := range file.Messages {
			table[msg.ID] = msg.Other
		}
	}

	return NewCatalog(tables)
}

// NewCatalog builds a catalog from in-memory tables. The default language is required.
func NewCatalog(tables map[string]StringTable) (*Catalog, error) {
	if _, ok := tables[DefaultLanguage]; !ok {
		return nil, ErrDefaultLanguageMissing
	}

	languages := make([]string, 0, len(tables))
	for code := range tables {
		languages = append(languages, code)
	}
	sort.Slice(languages, func(i, j int) bool {
		// Default language first so the matcher prefers it on ties.
		if languages[i] == DefaultLanguage || languages[j] == DefaultLanguage {
			return languages[i] == DefaultLanguage
		}
		return languages[i] < languages[j]
	})

	tags := make([]language.Tag, len(languages))
	for i, code := range languages {
		tags[i] = language.Make(code)
	}

	return &Catalog{
		tables:    tables,
		languages: languages,
		matcher:   language.NewMatcher(tags),
	}, nil
}

// Languages returns the loaded language codes, default language first.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.languages))
	copy(out, c.languages)
	return out
}

// Has reports whether code has its own string table.
func (c *Catalog) Has(code string) bool {
	_, ok := c.tables[code]
	return ok
}

// Resolve returns code when the catalog has it, otherwise DefaultLanguage.
func (c *Catalog) Resolve(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if c.Has(code) {
		return code
	}
	return DefaultLanguage
}

// Lookup resolves key in lang, then in DefaultLanguage. ok is false when
// neither table has the key.
func (c *Catalog) Lookup(lang, key string) (string, bool) {
	if table, ok := c.tables[lang]; ok {
		if text, ok := table[key]; ok {
			return text, true
		}
	}
	if text, ok := c.tables[DefaultLanguage][key]; ok {
		return text, true
	}
	return "", false
}

// Text is Lookup for composed messages: a missing key renders as the key itself.
func (c *Catalog) Text(lang, key string) string {
	if text, ok := c.Lookup(lang, key); ok {
		return text
	}
	return key
}

// Keys returns the sorted keys of lang's own table.
func (c *Catalog) Keys(lang string) []string {
	table := c.tables[lang]
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MissingKeys lists default-language keys that lang does not define.
func (c *Catalog) MissingKeys(lang string) []string {
	table, ok := c.tables[lang]
	if !ok {
		return c.Keys(DefaultLanguage)
	}
	var missing []string
	for _, key := range c.Keys(DefaultLanguage) {
		if _, ok := table[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// ExtraKeys lists keys lang defines that the default language does not.
func (c *Catalog) ExtraKeys(lang string) []string {
	base := c.tables[DefaultLanguage]
	var extra []string
	for _, key := range c.Keys(lang) {
		if _, ok := base[key]; !ok {
			extra = append(extra, key)
		}
	}
	return extra
}

// Match picks the best catalog language for an Accept-Language header value.
func (c *Catalog) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(c.languages) {
		return DefaultLanguage
	}
	return c.languages[index]
}

func baseCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
