package page

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/dom"
	"finitefield.org/dashpro-admin/internal/admin/i18n"
	"finitefield.org/dashpro-admin/internal/admin/rows"
	"finitefield.org/dashpro-admin/internal/admin/templates/analytics"
	"finitefield.org/dashpro-admin/internal/admin/templates/categories"
	"finitefield.org/dashpro-admin/internal/admin/templates/products"
	"finitefield.org/dashpro-admin/internal/admin/templates/settings"
	"finitefield.org/dashpro-admin/internal/admin/templates/users"
	"finitefield.org/dashpro-admin/internal/admin/ui"
)

// call is one event being dispatched.
type call struct {
	ctx    context.Context
	ev     *Event
	target *goquery.Selection
	// el is the element the matching handler was registered on.
	el     *goquery.Selection
	result *Result
}

func (c *call) prompter() ui.Prompter {
	return prompter{ev: c.ev, result: c.result}
}

// handler is a delegated listener. The first handler whose selector
// matches the target or one of its ancestors runs.
type handler struct {
	event    string
	selector string
	// stop keeps the click from reaching the document-level listener.
	stop bool
	fn   func(p *Page, c *call)
}

var handlers []handler

func init() {
	handlers = []handler{
		{event: EventClick, selector: ".toggle-sidebar", stop: true, fn: (*Page).onToggleSidebar},
		{event: EventClick, selector: ".header-icon.dropdown-toggle, .profile-toggle", stop: true, fn: (*Page).onHeaderToggle},
		{event: EventClick, selector: ".chart-options-toggle", stop: true, fn: (*Page).onChartOptionsToggle},
		{event: EventClick, selector: ".chart-options-dropdown a[data-action]", fn: (*Page).onChartAction},
		{event: EventClick, selector: ".chart-download-btn", fn: (*Page).onChartDownload},
		{event: EventClick, selector: ".language-select[data-lang]", fn: (*Page).onLanguageSelect},
		{event: EventClick, selector: ".color-dot[data-color]", fn: (*Page).onColorDot},
		{event: EventClick, selector: "#profileMenu .dropdown-item[data-action]", fn: (*Page).onProfileAction},
		{event: EventClick, selector: ".dropdown-footer[data-action]", stop: true, fn: (*Page).onDropdownFooter},
		{event: EventClick, selector: "#notificationsModal .mark-read-btn", fn: (*Page).onMarkRead},
		{event: EventClick, selector: "#notificationsModal .mark-unread-btn", fn: (*Page).onMarkUnread},
		{event: EventClick, selector: `#notificationsModal .btn-modern[data-lang-key="modalClearAll"]`, fn: (*Page).onClearNotifications},
		{event: EventClick, selector: "#messagesModal .view-message-btn", fn: (*Page).onViewMessage},
		{event: EventClick, selector: `#messagesModal .btn-modern[data-lang-key="modalComposeMessage"]`, fn: (*Page).onComposeMessage},
		{event: EventClick, selector: ".btn-details[data-modal-target]", fn: (*Page).onDetails},
		{event: EventClick, selector: ".date-filter-btn[data-range]", fn: (*Page).onDateFilter},
		{event: EventClick, selector: ".tab-btn[data-tab-target]", fn: (*Page).onSettingsTab},
		{event: EventClick, selector: ".faq-question", fn: (*Page).onFAQ},
		{event: EventClick, selector: addButtonSelector(), fn: (*Page).onAddButton},
		{event: EventClick, selector: ".role-tag", fn: (*Page).onRoleTag},
	}
	forms := map[string]bool{}
	confirms := map[string]bool{}
	for _, spec := range rows.All {
		spec := spec
		handlers = append(handlers, handler{
			event:    EventClick,
			selector: "#" + spec.TableID + " .action-btn, #" + spec.TableID + " .toggle-description-btn",
			fn:       func(p *Page, c *call) { p.rows.Action(spec, c.el, c.prompter()) },
		})
		if !confirms[spec.ConfirmClass] {
			confirms[spec.ConfirmClass] = true
			class := spec.ConfirmClass
			handlers = append(handlers, handler{
				event:    EventClick,
				selector: "." + class,
				fn: func(p *Page, _ *call) {
					if s, ok := p.presentSpec(func(s rows.Spec) bool { return s.ConfirmClass == class }); ok {
						p.rows.ConfirmDelete(s)
					}
				},
			})
		}
		if !forms[spec.EditForm] {
			forms[spec.EditForm] = true
			form := spec.EditForm
			handlers = append(handlers, handler{
				event:    EventSubmit,
				selector: "#" + form,
				fn: func(p *Page, _ *call) {
					if s, ok := p.presentSpec(func(s rows.Spec) bool { return s.EditForm == form }); ok {
						p.rows.Submit(s)
					}
				},
			})
		}
	}
	handlers = append(handlers,
		handler{event: EventClick, selector: ".modal .close-button, .modal .close-modal-btn", fn: (*Page).onCloseModal},
		handler{event: EventSubmit, selector: settingsFormSelector(), fn: (*Page).onSettingsSaved},
		handler{event: EventInput, selector: "#customPrimaryColorInput", fn: (*Page).onCustomColor},
		handler{event: EventChange, selector: "#customPrimaryColorInput", fn: (*Page).onCustomColor},
	)
}

var addButtons = map[string]string{
	users.AddButtonID:      "toastAddUserForm",
	products.AddButtonID:   "toastAddProductForm",
	categories.AddButtonID: "toastAddCategoryForm",
}

func addButtonSelector() string {
	ids := make([]string, 0, len(addButtons))
	for id := range addButtons {
		ids = append(ids, "#"+id)
	}
	return strings.Join(ids, ", ")
}

func settingsFormSelector() string {
	ids := settings.FormIDs()
	for i, id := range ids {
		ids[i] = "#" + id
	}
	return strings.Join(ids, ", ")
}

// presentSpec returns the first table spec accepted by match whose table is
// in the document. Tables sharing modals differ only by table id.
func (p *Page) presentSpec(match func(rows.Spec) bool) (rows.Spec, bool) {
	for _, s := range rows.All {
		if match(s) && dom.ByID(p.doc.Selection, s.TableID).Length() > 0 {
			return s, true
		}
	}
	return rows.Spec{}, false
}

// dispatch runs the first matching handler, then the document-level click
// listeners unless the handler stopped propagation.
func (p *Page) dispatch(c *call) {
	stopped := false
	for _, h := range handlers {
		if h.event != c.ev.Type {
			continue
		}
		el := c.target.Closest(h.selector)
		if el.Length() == 0 {
			continue
		}
		c.el = el
		h.fn(p, c)
		stopped = h.stop
		break
	}
	if c.ev.Type != EventClick || stopped {
		return
	}
	p.coord.DismissOnOverlay(c.target)
	p.coord.HandleBackgroundClick(c.target, c.ev.Viewport)
}

func (p *Page) onToggleSidebar(_ *call) {
	p.coord.ToggleSidebar()
}

func (p *Page) onHeaderToggle(c *call) {
	id := c.el.AttrOr("id", "")
	for _, d := range ui.HeaderDropdowns {
		if d.ToggleID == id {
			p.coord.ToggleDropdown(d.MenuID)
			return
		}
	}
}

func (p *Page) onChartOptionsToggle(c *call) {
	p.coord.ToggleDropdown(c.el.AttrOr("data-chart-id", "") + ui.ChartDropdownSuffix)
}

func (p *Page) onChartAction(c *call) {
	menu := c.el.Closest(".chart-options-dropdown")
	chartID := strings.TrimSuffix(menu.AttrOr("id", ""), ui.ChartDropdownSuffix)
	switch c.el.AttrOr("data-action", "") {
	case "view-data":
		p.coord.ShowToast(fmt.Sprintf("%s %s %s.", p.text("chartViewData"), p.text("forText"), chartID), ui.ToastInfo)
	case "export-csv":
		if d, ok := p.coord.ExportChartCSV(chartID); ok {
			p.offer(c, d)
			p.coord.ShowToast(fmt.Sprintf("%s %s %s.", p.text("chartExportCSV"), p.text("forText"), chartID), ui.ToastSuccess)
		}
	}
	menu.RemoveClass("show")
}

func (p *Page) onChartDownload(c *call) {
	d, ok := p.coord.DownloadChart(c.el.AttrOr("data-chart-id", ""), c.el.AttrOr("data-filename", ""))
	if ok {
		p.offer(c, d)
	}
}

func (p *Page) offer(c *call, d ui.Download) {
	if p.downloads == nil {
		p.logger.Warn("no download store", zap.String("file", d.Filename))
		return
	}
	c.result.Download = p.downloads.Put(d)
}

func (p *Page) onLanguageSelect(c *call) {
	if err := p.setLanguage(c.ctx, c.el.AttrOr("data-lang", "")); err != nil {
		p.logger.Error("persist language", zap.Error(err))
	}
	p.renderPageCharts()
	c.el.Closest(".dropdown-menu").RemoveClass("show")
}

func (p *Page) onColorDot(c *call) {
	if c.el.AttrOr("id", "") == "customPrimaryColorInput" {
		return
	}
	if err := p.setColor(c.ctx, c.el.AttrOr("data-color", "")); err != nil {
		p.logger.Warn("apply colour", zap.Error(err))
	}
}

func (p *Page) onCustomColor(c *call) {
	value := dom.Value(c.el)
	if v, ok := c.ev.Values["customPrimaryColorInput"]; ok {
		value = v
	}
	if err := p.setColor(c.ctx, value); err != nil {
		p.logger.Warn("apply colour", zap.Error(err))
	}
}

var profileToasts = map[string]string{
	"my-profile":     "myProfileSimulated",
	"switch-account": "switchAccountSimulated",
	"login-register": "loginRegisterSimulated",
	"logout":         "logoutSimulated",
}

func (p *Page) onProfileAction(c *call) {
	if target := c.el.AttrOr("data-modal-target", ""); target != "" {
		p.coord.OpenModal(target)
	} else if key, ok := profileToasts[c.el.AttrOr("data-action", "")]; ok {
		p.coord.ShowToast(p.text(key), ui.ToastInfo)
	}
	c.el.Closest(".dropdown-menu").RemoveClass("show")
}

func (p *Page) onDropdownFooter(c *call) {
	if target := c.el.AttrOr("data-modal-target", ""); target != "" {
		p.coord.OpenModal(target)
		c.el.Closest(".dropdown-menu").RemoveClass("show")
		return
	}
	p.coord.ShowToast(fmt.Sprintf("%s %s %s.", p.text("navigatingTo"), c.el.AttrOr("data-action", ""), p.text("pageSimulated")), ui.ToastInfo)
}

func (p *Page) onMarkRead(c *call) {
	item := c.el.Closest(".notification-item-full")
	if item.Length() == 0 {
		return
	}
	item.AddClass("read")
	p.coord.ShowToast(p.text("notificationMarkRead"), ui.ToastSuccess)
}

func (p *Page) onMarkUnread(c *call) {
	item := c.el.Closest(".notification-item-full")
	if item.Length() == 0 {
		return
	}
	item.RemoveClass("read")
	p.coord.ShowToast(p.text("notificationMarkUnread"), ui.ToastInfo)
}

func (p *Page) onClearNotifications(_ *call) {
	list := p.doc.Find("#notificationsModal .notification-full-list").First()
	if list.Length() == 0 {
		return
	}
	list.SetHtml(fmt.Sprintf(`<p class="empty-state" %s="noNotifications">%s</p>`, i18n.AttrKey, html.EscapeString(p.text("noNotifications"))))
	p.doc.Find("#notificationsToggle .badge").Remove()
	p.coord.ShowToast(p.text("modalClearAll")+"!", ui.ToastSuccess)
}

func (p *Page) onViewMessage(c *call) {
	item := c.el.Closest(".message-item-full")
	if item.Length() == 0 {
		return
	}
	p.coord.ShowToast(fmt.Sprintf("%s (%s)", p.text("messageViewDetails"), p.text("simulatedAction")), ui.ToastInfo)
	item.AddClass("read")
}

func (p *Page) onComposeMessage(_ *call) {
	p.coord.ShowToast(fmt.Sprintf("%s (%s)", p.text("modalComposeMessage"), p.text("simulatedFormOpen")), ui.ToastInfo)
	p.coord.CloseModal("messagesModal")
}

// onDetails opens a details modal and redraws its chart, if it has one, in
// the active language.
func (p *Page) onDetails(c *call) {
	target := c.el.AttrOr("data-modal-target", "")
	if !p.coord.OpenModal(target) {
		return
	}
	if k, ok := p.data.KPIByModal(target); ok {
		if _, defined := p.data.Charts[k.ModalChartID()]; defined {
			p.renderChart(k.ModalChartID())
		}
	}
}

func (p *Page) onDateFilter(c *call) {
	if p.name != analytics.PageName {
		return
	}
	id := c.el.AttrOr("data-range", "")
	r, err := p.data.Range(id)
	if err != nil {
		p.logger.Warn("unknown date range", zap.String("range", id))
		return
	}
	p.doc.Find(".date-filter-btn").RemoveClass("active")
	c.el.AddClass("active")
	p.rangeID = r.ID
	p.renderPageCharts()
	p.coord.ShowToast(p.text("analyticsDataFilteredFor")+" "+p.text(r.LabelKey), ui.ToastInfo)
}

func (p *Page) onSettingsTab(c *call) {
	p.doc.Find(".tab-btn").RemoveClass("active")
	p.doc.Find(".settings-content .tab-pane").RemoveClass("active")
	c.el.AddClass("active")
	dom.ByID(p.doc.Selection, c.el.AttrOr("data-tab-target", "")).AddClass("active")
}

func (p *Page) onSettingsSaved(_ *call) {
	p.coord.ShowToast(p.text("toastSettingsSaved"), ui.ToastSuccess)
}

func (p *Page) onFAQ(c *call) {
	item := c.el.Closest(".faq-item")
	if item.Length() == 0 {
		return
	}
	open := item.HasClass("active")
	p.doc.Find(".faq-item.active").RemoveClass("active")
	if !open {
		item.AddClass("active")
	}
}

func (p *Page) onAddButton(c *call) {
	if key, ok := addButtons[c.el.AttrOr("id", "")]; ok {
		p.coord.ShowToast(p.text(key), ui.ToastInfo)
	}
}

func (p *Page) onRoleTag(c *call) {
	role := c.el.Closest("tr").AttrOr("data-role", "")
	if role == "" {
		role = strings.TrimSpace(c.el.Text())
	}
	p.coord.ShowToast(p.text("toastSimulatingFilterRole")+" "+role, ui.ToastInfo)
}

// onCloseModal hides the modal and forgets any delete it was asking about.
func (p *Page) onCloseModal(c *call) {
	id := c.el.Closest(".modal").AttrOr("id", "")
	if id == "" {
		return
	}
	p.coord.CloseModal(id)
	p.coord.ClearPending(id)
}
