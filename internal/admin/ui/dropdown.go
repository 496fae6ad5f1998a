package ui

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"finitefield.org/dashpro-admin/internal/admin/dom"
)

// DropdownKind groups dropdown menus.
type DropdownKind string

const (
	DropdownLanguage      DropdownKind = "language"
	DropdownTheme         DropdownKind = "theme"
	DropdownProfile       DropdownKind = "profile"
	DropdownNotifications DropdownKind = "notifications"
	DropdownMessages      DropdownKind = "messages"
	DropdownChartOptions  DropdownKind = "chart-options"
)

// ChartDropdownSuffix joins a chart id to its options menu id.
const ChartDropdownSuffix = "Dropdown"

// HeaderDropdowns maps header toggle ids to the menus they open.
var HeaderDropdowns = []struct {
	Kind     DropdownKind
	ToggleID string
	MenuID   string
}{
	{DropdownLanguage, "languageToggle", "languageMenu"},
	{DropdownTheme, "themeToggle", "themeMenu"},
	{DropdownProfile, "profileToggle", "profileMenu"},
	{DropdownNotifications, "notificationsToggle", "notificationsMenu"},
	{DropdownMessages, "messagesToggle", "messagesMenu"},
}

type dropdown struct {
	kind   DropdownKind
	menu   *goquery.Selection
	toggle *goquery.Selection
}

// dropdowns lists every menu present in the document, header menus first.
func (c *Coordinator) dropdowns() []dropdown {
	var out []dropdown
	for _, h := range HeaderDropdowns {
		menu := dom.ByID(c.doc.Selection, h.MenuID)
		if menu.Length() == 0 {
			continue
		}
		out = append(out, dropdown{kind: h.Kind, menu: menu, toggle: dom.ByID(c.doc.Selection, h.ToggleID)})
	}
	c.doc.Find(".chart-options-dropdown[id]").Each(func(_ int, menu *goquery.Selection) {
		chartID := strings.TrimSuffix(menu.AttrOr("id", ""), ChartDropdownSuffix)
		toggle := c.doc.Find(".chart-options-toggle").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.AttrOr("data-chart-id", "") == chartID
		})
		out = append(out, dropdown{kind: DropdownChartOptions, menu: menu, toggle: toggle})
	})
	return out
}

// ToggleDropdown closes every other dropdown and flips menuID.
func (c *Coordinator) ToggleDropdown(menuID string) bool {
	menu := dom.ByID(c.doc.Selection, menuID)
	if menu.Length() == 0 {
		c.warnMissing("dropdown", menuID)
		return false
	}
	wasOpen := menu.HasClass("show")
	c.CloseDropdowns()
	if !wasOpen {
		menu.AddClass("show")
	}
	return true
}

// CloseDropdowns closes every dropdown of every kind.
func (c *Coordinator) CloseDropdowns() {
	for _, d := range c.dropdowns() {
		d.menu.RemoveClass("show")
	}
}

// OpenDropdowns returns the ids of open menus.
func (c *Coordinator) OpenDropdowns() []string {
	var ids []string
	for _, d := range c.dropdowns() {
		if d.menu.HasClass("show") {
			ids = append(ids, d.menu.AttrOr("id", ""))
		}
	}
	return ids
}

// ToggleSidebar flips the sidebar and the shell's overlay flag together.
func (c *Coordinator) ToggleSidebar() {
	sidebar := c.doc.Find(".sidebar")
	if sidebar.Length() == 0 {
		c.warnMissing("sidebar", ".sidebar")
		return
	}
	if sidebar.HasClass("active") {
		c.closeSidebar()
		return
	}
	sidebar.AddClass("active")
	c.doc.Find(".app-container").AddClass("sidebar-open")
}

// SidebarOpen reports the sidebar state.
func (c *Coordinator) SidebarOpen() bool {
	return c.doc.Find(".sidebar").HasClass("active")
}

func (c *Coordinator) closeSidebar() {
	c.doc.Find(".sidebar").RemoveClass("active")
	c.doc.Find(".app-container").RemoveClass("sidebar-open")
}

// HandleBackgroundClick is the document-level click listener. It closes
// open menus the click landed outside of, and on narrow viewports closes
// the sidebar when the click missed both it and its toggles.
func (c *Coordinator) HandleBackgroundClick(target *goquery.Selection, viewportWidth int) {
	for _, d := range c.dropdowns() {
		if !d.menu.HasClass("show") {
			continue
		}
		if dom.Contains(d.menu, target) || dom.Contains(d.toggle, target) {
			continue
		}
		d.menu.RemoveClass("show")
	}

	if viewportWidth <= 0 || viewportWidth > c.narrow || !c.SidebarOpen() {
		return
	}
	if dom.Contains(c.doc.Find(".sidebar"), target) || dom.Contains(c.doc.Find(".toggle-sidebar"), target) {
		return
	}
	c.closeSidebar()
}
