package page

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/dom"
	"finitefield.org/dashpro-admin/internal/admin/i18n"
	"finitefield.org/dashpro-admin/internal/admin/preferences"
	"finitefield.org/dashpro-admin/internal/admin/ui"
	"finitefield.org/dashpro-admin/internal/admin/ui/chart"
)

type fixture struct {
	factory   *Factory
	clock     *ui.ManualScheduler
	downloads *DownloadStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := ui.NewManualScheduler()
	downloads := NewDownloadStore(time.Minute)
	return &fixture{
		clock:     clock,
		downloads: downloads,
		factory: &Factory{
			Localizer: i18n.NewLocalizer(i18n.MustLoadCatalog(), nil),
			Demo:      demo.NewStaticService(),
			Scheduler: clock,
			Charts:    chart.NewGoChartRenderer(),
			Downloads: downloads,
			ChartURL: func(page, instance, canvasID string, revision int) string {
				return "/" + page + "/charts/" + canvasID + ".svg"
			},
		},
	}
}

func (f *fixture) open(t *testing.T, name string, store preferences.Store) *Page {
	t.Helper()
	ctx := context.Background()
	prefs, err := preferences.Open(ctx, store)
	require.NoError(t, err)
	p, err := f.factory.New(ctx, name, prefs, RenderOptions{EventsURL: "/" + name + "/events"})
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func pathOf(t *testing.T, p *Page, selector string) string {
	t.Helper()
	var (
		path string
		ok   bool
	)
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		path, ok = TargetPath(doc.Find(selector).First())
	})
	require.True(t, ok, "no element for %s", selector)
	return path
}

func click(t *testing.T, p *Page, selector string) Frame {
	t.Helper()
	frame, err := p.Dispatch(context.Background(), Event{Type: EventClick, Target: pathOf(t, p, selector), Viewport: 1280})
	require.NoError(t, err)
	return frame
}

func text(p *Page, selector string) string {
	var out string
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		out = strings.TrimSpace(doc.Find(selector).First().Text())
	})
	return out
}

func TestNewRejectsUnknownPage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.factory.New(context.Background(), "reports", nil, RenderOptions{})
	require.ErrorIs(t, err, ErrUnknownPage)
}

func TestEveryPageRenders(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	for _, name := range Names {
		p := f.open(t, name, nil)
		out, err := p.HTML()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"), name)

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
		require.NoError(t, err)
		require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""), name)
		require.Equal(t, name, doc.Find("body").AttrOr("data-page", ""), name)
		require.Equal(t, 1, doc.Find("#toastNotification").Length(), name)
	}
}

func TestLoadAppliesStoredLanguageWithFallback(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	store := preferences.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), preferences.KeyLanguage, "id"))

	p := f.open(t, "analytics", store)
	frame, err := p.Frame()
	require.NoError(t, err)
	require.Equal(t, "id", frame.Lang)
	require.Equal(t, "Pesanan", text(p, `.sidebar [data-lang-key="menuOrders"]`))
	require.Equal(t, "Page Views", text(p, `[data-lang-key="analyticsPageViews"]`))
}

func TestUnknownLanguageFallsBackAndPersistsDefault(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	store := preferences.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), preferences.KeyLanguage, "fr"))

	p := f.open(t, "dashboard", store)
	require.Equal(t, "Orders", text(p, `.sidebar [data-lang-key="menuOrders"]`))
	stored, err := store.Get(context.Background(), preferences.KeyLanguage)
	require.NoError(t, err)
	require.Equal(t, "en", stored)
}

func TestLanguageSelectTranslatesAndRedrawsCharts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)
	before, ok := p.Chart("revenueChart")
	require.True(t, ok)

	click(t, p, "#languageToggle")
	frame := click(t, p, `.language-select[data-lang="id"]`)

	require.Equal(t, "id", frame.Lang)
	require.Equal(t, "id", p.Preferences().Language())
	require.Equal(t, "Pesanan", text(p, `.sidebar [data-lang-key="menuOrders"]`))
	after, ok := p.Chart("revenueChart")
	require.True(t, ok)
	require.True(t, before.Disposed())
	require.False(t, after.Disposed())
	p.Inspect(func(_ *goquery.Document, coord *ui.Coordinator) {
		require.Empty(t, coord.OpenDropdowns())
	})
}

func TestDetailsModalOpensOnceWithOneChart(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)

	click(t, p, `.btn-details[data-modal-target="revenueModal"]`)
	first, ok := p.Chart("revenueModalChart")
	require.True(t, ok)
	click(t, p, `.btn-details[data-modal-target="revenueModal"]`)
	second, ok := p.Chart("revenueModalChart")
	require.True(t, ok)

	require.True(t, first.Disposed())
	require.False(t, second.Disposed())
	p.Inspect(func(_ *goquery.Document, coord *ui.Coordinator) {
		require.True(t, coord.ModalVisible("revenueModal"))
		require.Equal(t, 1, coord.DismissHandlers("revenueModal"))
	})

	click(t, p, "#revenueModal")
	p.Inspect(func(_ *goquery.Document, coord *ui.Coordinator) {
		require.False(t, coord.ModalVisible("revenueModal"))
	})
}

func TestHeaderDropdownsAreExclusive(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)

	click(t, p, "#languageToggle")
	click(t, p, "#themeToggle")
	p.Inspect(func(_ *goquery.Document, coord *ui.Coordinator) {
		require.Equal(t, []string{"themeMenu"}, coord.OpenDropdowns())
	})

	click(t, p, "#content")
	p.Inspect(func(_ *goquery.Document, coord *ui.Coordinator) {
		require.Empty(t, coord.OpenDropdowns())
	})
}

func TestToastRestartsHideTimer(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "users", nil)

	click(t, p, "#addUserBtn")
	require.Equal(t, "A form/modal to add a new user would appear here!", p.Toast().Message)

	f.clock.Advance(2000 * time.Millisecond)
	click(t, p, `#usersTable tr[data-user-id="USR-001"] .role-tag`)
	require.Equal(t, ui.ToastInfo, p.Toast().Kind)
	require.Contains(t, p.Toast().Message, "Admin")

	f.clock.Advance(2000 * time.Millisecond)
	require.True(t, p.Toast().Visible)
	f.clock.Advance(1000 * time.Millisecond)
	require.False(t, p.Toast().Visible)
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.False(t, doc.Find("#toastNotification").HasClass("show"))
	})
}

func TestDeleteOrderThroughModal(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "orders", nil)

	click(t, p, `#ordersTable tr[data-order-id="ORD-007"] .delete-order`)
	require.Equal(t, "ORD-007", text(p, "#deleteOrderIdDisplay"))
	click(t, p, ".confirm-delete-btn")

	p.Inspect(func(doc *goquery.Document, coord *ui.Coordinator) {
		require.Equal(t, 0, doc.Find(`tr[data-order-id="ORD-007"]`).Length())
		require.Equal(t, 1, doc.Find(`tr[data-order-id="ORD-001"]`).Length())
		require.False(t, coord.ModalVisible("deleteConfirmModal"))
	})
	require.Equal(t, "Order ORD-007 has been deleted.", p.Toast().Message)
}

func TestOverlayCloseForgetsPendingDelete(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "orders", nil)

	click(t, p, `#ordersTable tr[data-order-id="ORD-007"] .delete-order`)
	click(t, p, "#deleteConfirmModal")

	p.Inspect(func(doc *goquery.Document, coord *ui.Coordinator) {
		require.False(t, coord.ModalVisible("deleteConfirmModal"))
		_, armed := coord.PendingRow("deleteConfirmModal")
		require.False(t, armed)
		require.Equal(t, 1, doc.Find(`tr[data-order-id="ORD-007"]`).Length())
	})
}

func TestDeleteWithoutModalPromptsBrowser(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "orders", nil)
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		doc.Find("#deleteConfirmModal").Remove()
	})

	target := pathOf(t, p, `tr[data-order-id="ORD-007"] .delete-order`)
	frame, err := p.Dispatch(context.Background(), Event{Type: EventClick, Target: target})
	require.NoError(t, err)
	require.Equal(t, "Are you sure you want to delete order ORD-007?", frame.Prompt)

	yes := true
	frame, err = p.Dispatch(context.Background(), Event{Type: EventClick, Target: target, Confirmed: &yes})
	require.NoError(t, err)
	require.Empty(t, frame.Prompt)
	require.NotContains(t, frame.Body, `data-order-id="ORD-007"`)
}

func TestEditProductPrice(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "products", nil)

	click(t, p, `tr[data-product-id="P-003"] .edit-product`)
	_, err := p.Dispatch(context.Background(), Event{
		Type:   EventSubmit,
		Target: pathOf(t, p, "#editProductForm"),
		Values: map[string]string{"editProductPrice": "49.99"},
	})
	require.NoError(t, err)

	p.Inspect(func(doc *goquery.Document, coord *ui.Coordinator) {
		row := doc.Find(`tr[data-product-id="P-003"]`)
		require.Equal(t, "49.99", row.AttrOr("data-price", ""))
		require.Equal(t, "49.99", strings.TrimSpace(row.Find("td").Eq(3).Text()))
		require.Equal(t, "Cotton T-Shirt", row.AttrOr("data-name", ""))
		require.False(t, coord.ModalVisible("editProductModal"))
	})
	require.Equal(t, "Product P-003 has been updated.", p.Toast().Message)
}

func TestDashboardRecentOrdersShareOrderModals(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)

	click(t, p, "#recentOrdersTable tr:first-child .edit-order")
	id := ""
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		id = dom.Value(doc.Find("#editOriginalOrderId"))
	})
	require.NotEmpty(t, id)

	_, err := p.Dispatch(context.Background(), Event{
		Type:   EventSubmit,
		Target: pathOf(t, p, "#editOrderForm"),
		Values: map[string]string{"editCustomer": "Ada Lovelace"},
	})
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", text(p, `#recentOrdersTable tr[data-order-id="`+id+`"] td:nth-child(2)`))
}

func TestCategoryDescriptionToggleTwice(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "categories", nil)
	btn := `tr[data-category-id="CAT-001"] .toggle-description-btn`

	click(t, p, btn)
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.True(t, doc.Find(`tr[data-category-id="CAT-001"]`).Next().HasClass("show-description"))
	})
	require.Equal(t, "Hide Description", text(p, btn))

	click(t, p, btn)
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.False(t, doc.Find(`tr[data-category-id="CAT-001"]`).Next().HasClass("show-description"))
		require.True(t, doc.Find(btn).HasClass("btn-primary"))
	})
	require.Equal(t, "Show Description", text(p, btn))
}

func TestColorChoiceSurvivesFreshLoad(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	store := preferences.NewMemoryStore()
	p := f.open(t, "dashboard", store)

	frame := click(t, p, `.color-dot[data-color="#E53E3E"]`)
	require.Contains(t, frame.Style, "--primary: #E53E3E")

	fresh := f.open(t, "settings", store)
	frame, err := fresh.Frame()
	require.NoError(t, err)
	require.Contains(t, frame.Style, "--primary: #E53E3E")
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.True(t, doc.Find(`.color-dot[data-color="#E53E3E"]`).HasClass("active"))
	})
}

func TestCustomColorInputRejectsGarbage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)
	frame, err := p.Dispatch(context.Background(), Event{
		Type:   EventChange,
		Target: pathOf(t, p, "#customPrimaryColorInput"),
		Values: map[string]string{"customPrimaryColorInput": "not-a-colour"},
	})
	require.NoError(t, err)
	require.Contains(t, frame.Style, "--primary: "+preferences.DefaultPrimaryColor)
	require.Equal(t, preferences.DefaultPrimaryColor, p.Preferences().PrimaryColor())
}

func TestChartExportOffersDownload(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)

	click(t, p, `.chart-options-toggle[data-chart-id="salesChart"]`)
	frame := click(t, p, `#salesChartDropdown a[data-action="export-csv"]`)
	require.NotEmpty(t, frame.Download)
	require.Equal(t, ui.ToastSuccess, p.Toast().Kind)

	file, ok := f.downloads.Take(frame.Download)
	require.True(t, ok)
	require.Equal(t, "salesChart.csv", file.Filename)
	_, ok = f.downloads.Take(frame.Download)
	require.False(t, ok)
}

func TestAnalyticsRangeFilter(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "analytics", nil)

	click(t, p, `.date-filter-btn[data-range="last7"]`)
	require.Equal(t, "Analytics data filtered for: Last 7 Days", p.Toast().Message)
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.True(t, doc.Find(`.date-filter-btn[data-range="last7"]`).HasClass("active"))
		require.False(t, doc.Find(`.date-filter-btn[data-range="last30"]`).HasClass("active"))
	})
}

func TestNotificationsClearAll(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)

	click(t, p, "#notificationsToggle")
	click(t, p, `#notificationsMenu .dropdown-footer`)
	click(t, p, `#notificationsModal .btn-danger`)

	require.Equal(t, "Clear All!", p.Toast().Message)
	p.Inspect(func(doc *goquery.Document, coord *ui.Coordinator) {
		require.True(t, coord.ModalVisible("notificationsModal"))
		require.Equal(t, 0, doc.Find(".notification-item-full").Length())
		require.Equal(t, 0, doc.Find("#notificationsToggle .badge").Length())
		require.Empty(t, coord.OpenDropdowns())
	})
}

func TestFAQIsExclusive(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "help", nil)

	click(t, p, ".faq-item:nth-of-type(1) .faq-question")
	click(t, p, ".faq-item:nth-of-type(2) .faq-question")
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.Equal(t, 1, doc.Find(".faq-item.active").Length())
	})
	click(t, p, ".faq-item.active .faq-question")
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.Equal(t, 0, doc.Find(".faq-item.active").Length())
	})
}

func TestSettingsTabsAndSave(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "settings", nil)

	click(t, p, `.tab-btn[data-tab-target="securityTab"]`)
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.True(t, doc.Find("#securityTab").HasClass("active"))
		require.False(t, doc.Find("#generalTab").HasClass("active"))
	})

	_, err := p.Dispatch(context.Background(), Event{Type: EventSubmit, Target: pathOf(t, p, "#securitySettingsForm")})
	require.NoError(t, err)
	require.Equal(t, "Settings saved successfully!", p.Toast().Message)
}

func TestDispatchRejectsBadEvents(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)

	_, err := p.Dispatch(context.Background(), Event{Type: "hover"})
	require.ErrorIs(t, err, ErrUnknownEventType)
	_, err = p.Dispatch(context.Background(), Event{Type: EventClick, Target: "0/999"})
	require.ErrorIs(t, err, ErrTargetNotFound)
	_, err = p.Dispatch(context.Background(), Event{Type: EventClick, Target: "x"})
	require.ErrorIs(t, err, ErrTargetNotFound)
}

func TestTargetPathRoundTrip(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div><p>a</p>text<p><b id="x">b</b></p></div></body></html>`))
	require.NoError(t, err)

	path, ok := TargetPath(doc.Find("#x"))
	require.True(t, ok)
	require.Equal(t, "0/1/0", path)

	got, err := resolveTarget(doc, path)
	require.NoError(t, err)
	require.Equal(t, "x", got.AttrOr("id", ""))

	_, ok = TargetPath(doc.Find("head"))
	require.False(t, ok)
}

func TestRegistrySweepsIdlePages(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := time.Now()
	reg := NewRegistry(f.factory, WithIdleTTL(time.Minute), WithClock(func() time.Time { return now }))
	t.Cleanup(reg.Close)

	p, err := reg.Open(context.Background(), "help", nil, RenderOptions{})
	require.NoError(t, err)
	got, err := reg.Get("help", p.ID())
	require.NoError(t, err)
	require.Same(t, p, got)

	_, err = reg.Get("orders", p.ID())
	require.ErrorIs(t, err, ErrPageExpired)

	now = now.Add(2 * time.Minute)
	require.Equal(t, 1, reg.Sweep())
	require.Equal(t, 0, reg.Len())
	_, err = reg.Get("help", p.ID())
	require.ErrorIs(t, err, ErrPageExpired)
}

func TestRegistryReclaimsIdlePagesWithoutNewLoads(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := time.Now()
	reg := NewRegistry(f.factory, WithIdleTTL(time.Minute), WithClock(func() time.Time { return now }))
	t.Cleanup(reg.Close)

	sweeper := ui.NewManualScheduler()
	stop := reg.StartSweeping(sweeper, 30*time.Second)

	_, err := reg.Open(context.Background(), "help", nil, RenderOptions{})
	require.NoError(t, err)
	_, err = reg.Open(context.Background(), "orders", nil, RenderOptions{})
	require.NoError(t, err)

	sweeper.Advance(30 * time.Second)
	require.Equal(t, 2, reg.Len(), "pages are still fresh")

	now = now.Add(2 * time.Minute)
	sweeper.Advance(30 * time.Second)
	require.Equal(t, 0, reg.Len())

	stop()
	require.Zero(t, sweeper.Pending())
}

func TestRegistryGetExpiresIdlePage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := time.Now()
	reg := NewRegistry(f.factory, WithIdleTTL(time.Minute), WithClock(func() time.Time { return now }))
	t.Cleanup(reg.Close)

	p, err := reg.Open(context.Background(), "help", nil, RenderOptions{})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = reg.Get("help", p.ID())
	require.ErrorIs(t, err, ErrPageExpired)
	require.Equal(t, 0, reg.Len())
}

func TestProfileMenuActions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)

	click(t, p, "#profileToggle")
	click(t, p, `#profileMenu [data-action="my-profile"]`)
	p.Inspect(func(_ *goquery.Document, coord *ui.Coordinator) {
		require.True(t, coord.ModalVisible("myProfileModal"))
		require.NotContains(t, coord.OpenDropdowns(), "profileMenu")
	})

	click(t, p, "#profileToggle")
	click(t, p, `#profileMenu [data-action="logout"]`)
	require.Equal(t, "Logging out (simulated action).", p.Toast().Message)
	p.Inspect(func(_ *goquery.Document, coord *ui.Coordinator) {
		require.NotContains(t, coord.OpenDropdowns(), "profileMenu")
	})
}

func TestNotificationReadToggles(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)

	click(t, p, "#notificationsToggle")
	click(t, p, "#notificationsMenu .dropdown-footer")

	click(t, p, `#notificationsModal [data-notification-id="N-1"] .mark-read-btn`)
	require.Equal(t, "Mark as Read", p.Toast().Message)
	require.Equal(t, ui.ToastSuccess, p.Toast().Kind)
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.True(t, doc.Find(`[data-notification-id="N-1"]`).HasClass("read"))
	})

	click(t, p, `#notificationsModal [data-notification-id="N-3"] .mark-unread-btn`)
	require.Equal(t, "Mark as Unread", p.Toast().Message)
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.False(t, doc.Find(`[data-notification-id="N-3"]`).HasClass("read"))
	})
}

func TestMessagesViewAndCompose(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.open(t, "dashboard", nil)

	click(t, p, "#messagesToggle")
	click(t, p, "#messagesMenu .dropdown-footer")
	p.Inspect(func(_ *goquery.Document, coord *ui.Coordinator) {
		require.True(t, coord.ModalVisible("messagesModal"))
	})

	click(t, p, `#messagesModal [data-message-id="M-1"] .view-message-btn`)
	require.Equal(t, "View Details (Simulated Action)", p.Toast().Message)
	p.Inspect(func(doc *goquery.Document, _ *ui.Coordinator) {
		require.True(t, doc.Find(`[data-message-id="M-1"]`).HasClass("read"))
	})

	click(t, p, `#messagesModal [data-lang-key="modalComposeMessage"]`)
	require.Equal(t, "Compose Message (Simulated form open)", p.Toast().Message)
	p.Inspect(func(_ *goquery.Document, coord *ui.Coordinator) {
		require.False(t, coord.ModalVisible("messagesModal"))
	})
}

func TestAddButtonsShowFormToast(t *testing.T) {
	t.Parallel()

	cases := []struct {
		page, button, want string
	}{
		{"users", "#addUserBtn", "A form/modal to add a new user would appear here!"},
		{"products", "#addProductBtn", "A form/modal to add a new product would appear here!"},
		{"categories", "#addCategoryBtn", "A form/modal to add a new category would appear here!"},
	}
	f := newFixture(t)
	for _, tc := range cases {
		p := f.open(t, tc.page, nil)
		click(t, p, tc.button)
		require.Equal(t, tc.want, p.Toast().Message, tc.page)
		require.Equal(t, ui.ToastInfo, p.Toast().Kind)
	}
}
