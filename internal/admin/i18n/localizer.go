package i18n

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/observability"
)

// Document attributes consumed by the localizer.
const (
	AttrKey  = "data-lang-key"
	AttrHTML = "data-lang-html"
)

// NodeKind selects how resolved text is written into a labelled node.
type NodeKind int

const (
	// NodeText replaces the node's text content.
	NodeText NodeKind = iota
	// NodePlaceholder sets the placeholder of an input or textarea.
	NodePlaceholder
	// NodeOption replaces the label of a select option.
	NodeOption
	// NodeHTML replaces the node's markup. Catalog text only.
	NodeHTML
)

func (k NodeKind) String() string {
	switch k {
	case NodePlaceholder:
		return "placeholder"
	case NodeOption:
		return "option"
	case NodeHTML:
		return "html"
	default:
		return "text"
	}
}

// KindOf classifies a labelled node.
func KindOf(sel *goquery.Selection) NodeKind {
	switch goquery.NodeName(sel) {
	case "input", "textarea":
		return NodePlaceholder
	case "option":
		return NodeOption
	}
	if _, ok := sel.Attr(AttrHTML); ok {
		return NodeHTML
	}
	return NodeText
}

// LanguageStore persists the active language.
type LanguageStore interface {
	SetLanguage(ctx context.Context, code string) error
}

// Report summarises one SetLanguage pass.
type Report struct {
	Requested string
	Language  string
	Applied   int
	Missing   []string
}

// Localizer synchronises live documents with the catalog.
type Localizer struct {
	catalog  *Catalog
	logger   *zap.Logger
	appliers map[NodeKind]func(*goquery.Selection, string)
}

// NewLocalizer constructs a Localizer over catalog.
func NewLocalizer(catalog *Catalog, logger *zap.Logger) *Localizer {
	policy := bluemonday.UGCPolicy()
	return &Localizer{
		catalog: catalog,
		logger:  observability.OrNop(logger).Named("i18n"),
		appliers: map[NodeKind]func(*goquery.Selection, string){
			NodeText:        func(sel *goquery.Selection, text string) { sel.SetText(text) },
			NodeOption:      func(sel *goquery.Selection, text string) { sel.SetText(text) },
			NodePlaceholder: func(sel *goquery.Selection, text string) { sel.SetAttr("placeholder", text) },
			NodeHTML:        func(sel *goquery.Selection, text string) { sel.SetHtml(policy.Sanitize(text)) },
		},
	}
}

// Catalog exposes the underlying catalog.
func (l *Localizer) Catalog() *Catalog {
	return l.catalog
}

// SetLanguage activates code on doc and persists it through store. Unknown
// codes behave exactly like DefaultLanguage. The document is localized even
// when persisting fails; the store error is returned.
func (l *Localizer) SetLanguage(ctx context.Context, doc *goquery.Document, store LanguageStore, code string) (Report, error) {
	report := l.Apply(doc.Selection, code)

	markLanguageSelectors(doc, report.Language)
	l.syncDescriptionToggles(doc, report.Language)

	if store != nil {
		if err := store.SetLanguage(ctx, report.Language); err != nil {
			return report, fmt.Errorf("persist language: %w", err)
		}
	}
	return report, nil
}

// Apply localizes every labelled node under root without touching
// selectors or preferences.
func (l *Localizer) Apply(root *goquery.Selection, code string) Report {
	lang := l.catalog.Resolve(code)
	report := Report{Requested: code, Language: lang}

	nodes := root.Find("[" + AttrKey + "]")
	if root.Is("[" + AttrKey + "]") {
		nodes = root.AddSelection(nodes)
	}
	nodes.Each(func(_ int, sel *goquery.Selection) {
		key, _ := sel.Attr(AttrKey)
		text, ok := l.catalog.Lookup(lang, key)
		if !ok {
			report.Missing = append(report.Missing, key)
			l.logger.Debug("translation key missing", zap.String("key", key), zap.String("language", lang))
			return
		}
		l.appliers[KindOf(sel)](sel, text)
		report.Applied++
	})
	return report
}

// Text resolves key for lang with the key itself as the last resort.
func (l *Localizer) Text(lang, key string) string {
	return l.catalog.Text(lang, key)
}

func markLanguageSelectors(doc *goquery.Document, lang string) {
	doc.Find(".language-select[data-lang]").Each(func(_ int, sel *goquery.Selection) {
		if sel.AttrOr("data-lang", "") == lang {
			sel.AddClass("active")
		} else {
			sel.RemoveClass("active")
		}
	})
}

// syncDescriptionToggles labels each category description toggle from its
// row's current state, so switching language keeps expanded rows expanded.
func (l *Localizer) syncDescriptionToggles(doc *goquery.Document, lang string) {
	doc.Find(".toggle-description-btn").Each(func(_ int, btn *goquery.Selection) {
		next := btn.Closest("tr").Next()
		if !next.HasClass("category-description-row") {
			return
		}
		key := "categoriesShowDescription"
		if next.HasClass("show-description") {
			key = "categoriesHideDescription"
		}
		if text, ok := l.catalog.Lookup(lang, key); ok {
			btn.SetText(text)
		}
	})
}
