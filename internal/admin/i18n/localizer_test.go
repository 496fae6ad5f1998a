package i18n

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const labelledPage = `<html><body>
<h1 data-lang-key="ordersPageTitle">Orders</h1>
<input id="search" data-lang-key="searchOrdersPlaceholder" placeholder="Search">
<select><option data-lang-key="statusPending">Pending</option></select>
<p id="support" data-lang-key="helpSupportHtml" data-lang-html="true">old</p>
<span id="unknown" data-lang-key="doesNotExist">keep me</span>
<a class="language-select active" data-lang="en">EN</a>
<a class="language-select" data-lang="id">ID</a>
<table><tbody>
<tr><td><button class="toggle-description-btn">x</button></td></tr>
<tr class="category-description-row show-description"><td>open</td></tr>
<tr><td><button class="toggle-description-btn">x</button></td></tr>
<tr class="category-description-row"><td>closed</td></tr>
</tbody></table>
</body></html>`

type recordingStore struct {
	codes []string
	err   error
}

func (s *recordingStore) SetLanguage(_ context.Context, code string) error {
	s.codes = append(s.codes, code)
	return s.err
}

func newLocalizer(t *testing.T) *Localizer {
	t.Helper()
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	return NewLocalizer(catalog, nil)
}

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestSetLanguageAppliesEachNodeKind(t *testing.T) {
	t.Parallel()

	l := newLocalizer(t)
	doc := parse(t, labelledPage)
	store := &recordingStore{}

	report, err := l.SetLanguage(context.Background(), doc, store, "id")
	require.NoError(t, err)
	require.Equal(t, "id", report.Language)
	require.Equal(t, []string{"doesNotExist"}, report.Missing)
	require.Equal(t, []string{"id"}, store.codes)

	cat := l.Catalog()
	require.Equal(t, cat.Text("id", "ordersPageTitle"), doc.Find("h1").Text())
	require.Equal(t, cat.Text("id", "searchOrdersPlaceholder"), doc.Find("#search").AttrOr("placeholder", ""))
	require.Equal(t, cat.Text("id", "statusPending"), doc.Find("option").Text())
	require.Equal(t, 1, doc.Find("#support strong").Length())
	require.Contains(t, doc.Find("#support").Text(), "support@dashpro.example")
	require.Equal(t, "keep me", doc.Find("#unknown").Text())

	require.False(t, doc.Find(`.language-select[data-lang="en"]`).HasClass("active"))
	require.True(t, doc.Find(`.language-select[data-lang="id"]`).HasClass("active"))

	toggles := doc.Find(".toggle-description-btn")
	require.Equal(t, cat.Text("id", "categoriesHideDescription"), toggles.Eq(0).Text())
	require.Equal(t, cat.Text("id", "categoriesShowDescription"), toggles.Eq(1).Text())
	require.True(t, doc.Find(".category-description-row").First().HasClass("show-description"))
}

func TestSetLanguageUnknownCodeMatchesDefault(t *testing.T) {
	t.Parallel()

	l := newLocalizer(t)

	unknown := parse(t, labelledPage)
	english := parse(t, labelledPage)
	unknownStore := &recordingStore{}
	englishStore := &recordingStore{}

	report, err := l.SetLanguage(context.Background(), unknown, unknownStore, "tlh")
	require.NoError(t, err)
	require.Equal(t, "tlh", report.Requested)
	require.Equal(t, "en", report.Language)

	_, err = l.SetLanguage(context.Background(), english, englishStore, "en")
	require.NoError(t, err)

	a, err := unknown.Html()
	require.NoError(t, err)
	b, err := english.Html()
	require.NoError(t, err)
	require.Equal(t, b, a)
	require.Equal(t, englishStore.codes, unknownStore.codes)
}

func TestSetLanguageFallsBackPerKey(t *testing.T) {
	t.Parallel()

	l := newLocalizer(t)
	doc := parse(t, `<html><body><h2 data-lang-key="analyticsPageViews">x</h2><h3 data-lang-key="orderText">x</h3></body></html>`)

	_, err := l.SetLanguage(context.Background(), doc, nil, "id")
	require.NoError(t, err)
	require.Equal(t, l.Catalog().Text("en", "analyticsPageViews"), doc.Find("h2").Text())
	require.Equal(t, "Pesanan", doc.Find("h3").Text())
}

func TestSetLanguageReportsStoreFailure(t *testing.T) {
	t.Parallel()

	l := newLocalizer(t)
	doc := parse(t, labelledPage)
	store := &recordingStore{err: errors.New("disk full")}

	report, err := l.SetLanguage(context.Background(), doc, store, "id")
	require.Error(t, err)
	require.Equal(t, "id", report.Language)
	require.Equal(t, l.Catalog().Text("id", "ordersPageTitle"), doc.Find("h1").Text())
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<div><input id="a"><textarea id="b"></textarea><option id="c"></option><p id="d" data-lang-html="1"></p><span id="e"></span></div>`)
	require.Equal(t, NodePlaceholder, KindOf(doc.Find("#a")))
	require.Equal(t, NodePlaceholder, KindOf(doc.Find("#b")))
	require.Equal(t, NodeOption, KindOf(doc.Find("#c")))
	require.Equal(t, NodeHTML, KindOf(doc.Find("#d")))
	require.Equal(t, NodeText, KindOf(doc.Find("#e")))
}
