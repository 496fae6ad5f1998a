// Package layout renders the console shell shared by every page: the
// sidebar, the header dropdowns, the shared modals and the toast.
package layout

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/httpserver/middleware"
	"finitefield.org/dashpro-admin/internal/admin/templates/components"
	h "finitefield.org/dashpro-admin/internal/admin/templates/helpers"
	"finitefield.org/dashpro-admin/public"
)

// Asset paths referenced by the shell.
const (
	StylesheetPath = public.StylesheetPath
	ScriptPath     = public.ScriptPath
	FontAwesomeCSS = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css"
)

// Shell carries the per-page values the layout needs.
type Shell struct {
	// Page is the page name ("dashboard", "orders", ...).
	Page     string
	TitleKey string
	Lang     string
	// Style is the initial inline style of <html>.
	Style string
	// EventsURL receives browser events for this page instance.
	EventsURL string
	// Instance identifies the live page.
	Instance  string
	CSRFToken string
	CSRFField string

	// Environment labels non-production deployments in the header.
	Environment string

	Languages     []Language
	Notifications []demo.Notification
	Messages      []demo.Message
}

// Language is one entry of the language menu.
type Language struct {
	Code     string
	LabelKey string
}

// ColorPresets are the theme menu swatches.
var ColorPresets = []string{"#5a67d8", "#E53E3E", "#38A169", "#D69E2E", "#805AD5", "#3182CE"}

// Page renders a full document around content.
func Page(shell Shell, content templ.Component) templ.Component {
	htmlAttrs := h.Attrs{"lang", shell.Lang}
	if shell.Style != "" {
		htmlAttrs = htmlAttrs.With("style", shell.Style)
	}
	return h.Group(
		h.Raw("<!DOCTYPE html>"),
		h.El("html", htmlAttrs,
			head(shell),
			h.El("body", h.Attrs{
				"class", shell.Page + "-page",
				"data-page", shell.Page,
				"data-instance", shell.Instance,
				"data-events", shell.EventsURL,
			},
				h.El("div", h.Attrs{"class", "app-container"},
					sidebar(shell),
					h.El("div", h.Attrs{"class", "main-content"},
						header(shell),
						h.El("main", h.Attrs{"id", "content", "class", "content"}, content),
						h.El("footer", h.Attrs{"class", "footer"}, h.Text("© "), h.Label("span", "footerText", nil)),
					),
				),
				sharedModals(shell),
				toast(),
				h.El("script", h.Attrs{"src", ScriptPath, "defer", "defer"}),
			),
		),
	)
}

func head(shell Shell) templ.Component {
	return h.El("head", nil,
		h.El("meta", h.Attrs{"charset", "utf-8"}),
		h.El("meta", h.Attrs{"name", "viewport", "content", "width=device-width, initial-scale=1"}),
		h.El("meta", h.Attrs{"name", "csrf-token", "content", shell.CSRFToken, "data-header", shell.CSRFField}),
		h.Label("title", shell.TitleKey, nil),
		h.El("link", h.Attrs{"rel", "stylesheet", "href", FontAwesomeCSS}),
		h.El("link", h.Attrs{"rel", "stylesheet", "href", StylesheetPath}),
	)
}

type navItem struct {
	page  string
	key   string
	icon  string
	group string
}

var navItems = []navItem{
	{"dashboard", "menuDashboard", "fa-tachometer-alt", "menuMain"},
	{"analytics", "menuAnalytics", "fa-chart-line", "menuMain"},
	{"orders", "menuOrders", "fa-shopping-cart", "menuManagement"},
	{"users", "menuUsers", "fa-users", "menuManagement"},
	{"products", "menuProducts", "fa-box", "menuManagement"},
	{"categories", "menuCategories", "fa-tags", "menuManagement"},
	{"settings", "menuSettings", "fa-cog", "menuManagement"},
	{"help", "menuHelp", "fa-question-circle", "menuManagement"},
}

func sidebar(shell Shell) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var children []templ.Component
		group := ""
		for _, item := range navItems {
			if item.group != group {
				group = item.group
				children = append(children, h.Label("div", group, h.Attrs{"class", "menu-title"}))
			}
			path := h.PagePath(ctx, item.page)
			active := item.page == shell.Page || h.NavActive(ctx, item.page)
			children = append(children, h.El("a", h.Attrs{"href", path, "class", h.NavClass(active)},
				h.Icon(item.icon), h.Text(" "), h.Label("span", item.key, nil)))
		}
		return h.El("aside", h.Attrs{"class", "sidebar"},
			h.El("div", h.Attrs{"class", "sidebar-header"},
				h.El("div", h.Attrs{"class", "logo"}, h.Icon("fa-chart-pie"), h.Text(" DashPro")),
			),
			h.El("nav", h.Attrs{"class", "sidebar-menu"}, children...),
		).Render(ctx, w)
	})
}

func environmentBadge(env string) templ.Component {
	badge := middleware.EnvironmentBadge(env)
	if badge == "" {
		return nil
	}
	return h.El("span", h.Attrs{"class", "env-badge"}, h.Text(badge))
}

func header(shell Shell) templ.Component {
	return h.El("header", h.Attrs{"class", "header"},
		h.El("div", h.Attrs{"class", "header-left"},
			h.El("button", h.Attrs{"type", "button", "class", "toggle-sidebar", "id", "sidebarToggle", "aria-label", "menu"}, h.Icon("fa-bars")),
			environmentBadge(shell.Environment),
		),
		h.El("div", h.Attrs{"class", "header-right"},
			languageMenu(shell),
			themeMenu(),
			notificationsMenu(shell.Notifications),
			messagesMenu(shell.Messages),
			profileMenu(),
		),
	)
}

func headerIcon(id, icon string, badge int, menu templ.Component) templ.Component {
	var count templ.Component
	if badge > 0 {
		count = h.El("span", h.Attrs{"class", "badge"}, h.Text(strconv.Itoa(badge)))
	}
	return h.El("div", h.Attrs{"class", "header-dropdown"},
		h.El("div", h.Attrs{"class", "header-icon dropdown-toggle", "id", id}, h.Icon(icon), count),
		menu,
	)
}

func languageMenu(shell Shell) templ.Component {
	items := h.Each(shell.Languages, func(l Language) templ.Component {
		class := "dropdown-item language-select"
		if l.Code == shell.Lang {
			class += " active"
		}
		return h.Label("a", l.LabelKey, h.Attrs{"href", "#", "class", class, "data-lang", l.Code})
	})
	return headerIcon("languageToggle", "fa-globe", 0,
		h.El("div", h.Attrs{"class", "dropdown-menu", "id", "languageMenu"}, items))
}

func themeMenu() templ.Component {
	dots := h.Each(ColorPresets, func(c string) templ.Component {
		return h.El("span", h.Attrs{"class", "color-dot", "data-color", c, "style", "background-color: " + c + ";"})
	})
	return headerIcon("themeToggle", "fa-palette", 0,
		h.El("div", h.Attrs{"class", "dropdown-menu", "id", "themeMenu"},
			h.Label("div", "settingsThemePrimaryColor", h.Attrs{"class", "dropdown-header"}),
			h.El("div", h.Attrs{"class", "color-palette"},
				dots,
				h.El("input", h.Attrs{"type", "color", "class", "color-dot custom-color", "id", "customPrimaryColorInput", "value", ColorPresets[0]}),
			),
		))
}

func unreadNotifications(items []demo.Notification) int {
	n := 0
	for _, item := range items {
		if item.Unread {
			n++
		}
	}
	return n
}

func unreadMessages(items []demo.Message) int {
	n := 0
	for _, item := range items {
		if item.Unread {
			n++
		}
	}
	return n
}

func notificationsMenu(items []demo.Notification) templ.Component {
	return headerIcon("notificationsToggle", "fa-bell", unreadNotifications(items),
		h.El("div", h.Attrs{"class", "dropdown-menu dropdown-menu-wide", "id", "notificationsMenu"},
			h.Label("div", "headerNotificationsTitle", h.Attrs{"class", "dropdown-header"}),
			h.Each(items, func(n demo.Notification) templ.Component {
				return h.El("div", h.Attrs{"class", "dropdown-item notification-item"},
					h.Icon(n.Icon),
					h.El("div", h.Attrs{"class", "notification-content"},
						h.Label("p", n.TitleKey, nil),
						h.El("small", nil, h.Text(n.Time)),
					),
				)
			}),
			h.Label("a", "headerViewAllNotifications", h.Attrs{"href", "#", "class", "dropdown-footer",
				"data-action", "notifications", "data-modal-target", "notificationsModal"}),
		))
}

func messagesMenu(items []demo.Message) templ.Component {
	return headerIcon("messagesToggle", "fa-envelope", unreadMessages(items),
		h.El("div", h.Attrs{"class", "dropdown-menu dropdown-menu-wide", "id", "messagesMenu"},
			h.Label("div", "headerMessagesTitle", h.Attrs{"class", "dropdown-header"}),
			h.Each(items, func(m demo.Message) templ.Component {
				return h.El("div", h.Attrs{"class", "dropdown-item message-item"},
					h.El("strong", nil, h.Text(m.Sender)),
					h.Label("p", m.PreviewKey, nil),
					h.El("small", nil, h.Text(m.Time)),
				)
			}),
			h.Label("a", "headerViewAllMessages", h.Attrs{"href", "#", "class", "dropdown-footer",
				"data-action", "messages", "data-modal-target", "messagesModal"}),
		))
}

// ProfileActions lists the profile menu actions and the modal each opens.
// Actions without a modal show a simulated-action toast.
var ProfileActions = []struct {
	Action   string
	LabelKey string
	Icon     string
	Modal    string
}{
	{"my-profile", "profileMyProfile", "fa-user", "myProfileModal"},
	{"account-settings", "profileAccountSettings", "fa-cog", ""},
	{"switch-account", "profileSwitchAccount", "fa-exchange-alt", "switchAccountModal"},
	{"login-register", "profileLoginRegister", "fa-sign-in-alt", "loginRegisterModal"},
	{"logout", "profileLogout", "fa-sign-out-alt", ""},
}

func profileMenu() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var items []templ.Component
		for _, a := range ProfileActions {
			attrs := h.Attrs{"href", "#", "class", "dropdown-item", "data-action", a.Action}
			if a.Action == "account-settings" {
				attrs = h.Attrs{"href", h.PagePath(ctx, "settings"), "class", "dropdown-item", "data-action", a.Action}
			}
			if a.Modal != "" {
				attrs = attrs.With("data-modal-target", a.Modal)
			}
			items = append(items, h.El("a", attrs, h.Icon(a.Icon), h.Text(" "), h.Label("span", a.LabelKey, nil)))
		}
		return h.El("div", h.Attrs{"class", "header-dropdown"},
			h.El("div", h.Attrs{"class", "user-profile profile-toggle", "id", "profileToggle"},
				h.El("div", h.Attrs{"class", "avatar"}, h.Text("AD")),
				h.El("span", h.Attrs{"class", "user-name"}, h.Text("Admin")),
			),
			h.El("div", h.Attrs{"class", "dropdown-menu", "id", "profileMenu"}, items...),
		).Render(ctx, w)
	})
}

func sharedModals(shell Shell) templ.Component {
	return h.Group(
		components.Modal("notificationsModal", "modalAllNotificationsTitle",
			h.El("div", h.Attrs{"class", "notification-full-list"},
				h.Each(shell.Notifications, notificationItem)),
			h.El("div", h.Attrs{"class", "modal-actions"},
				h.Label("button", "modalClearAll", h.Attrs{"type", "button", "class", "btn-modern btn-danger"}),
			),
		),
		components.Modal("messagesModal", "modalAllMessagesTitle",
			h.El("div", h.Attrs{"class", "message-full-list"},
				h.Each(shell.Messages, messageItem)),
			h.El("div", h.Attrs{"class", "modal-actions"},
				h.Label("button", "modalComposeMessage", h.Attrs{"type", "button", "class", "btn-modern btn-primary"}),
			),
		),
		components.Modal("myProfileModal", "modalMyProfileTitle",
			h.Label("p", "modalMyProfileInfo", nil),
			h.Label("button", "modalEditProfile", h.Attrs{"type", "button", "class", "btn-modern btn-primary close-modal-btn"}),
		),
		components.Modal("switchAccountModal", "modalSwitchAccountTitle",
			h.Label("p", "modalSwitchAccountInfo", nil),
			h.Label("button", "modalSwitch", h.Attrs{"type", "button", "class", "btn-modern btn-primary close-modal-btn"}),
		),
		components.Modal("loginRegisterModal", "modalLoginRegisterTitle",
			h.Label("p", "modalLoginRegisterInfo", nil),
			h.Label("button", "modalGoToLogin", h.Attrs{"type", "button", "class", "btn-modern btn-primary close-modal-btn"}),
		),
	)
}

func notificationItem(n demo.Notification) templ.Component {
	class := "notification-item-full"
	if !n.Unread {
		class += " read"
	}
	return h.El("div", h.Attrs{"class", class, "data-notification-id", n.ID},
		h.El("div", h.Attrs{"class", "notification-icon"}, h.Icon(n.Icon)),
		h.El("div", h.Attrs{"class", "notification-body"},
			h.Label("p", n.DetailKey, nil),
			h.El("small", nil, h.Text(n.Time)),
		),
		h.El("div", h.Attrs{"class", "notification-actions"},
			h.Label("button", "notificationMarkRead", h.Attrs{"type", "button", "class", "btn-modern btn-secondary mark-read-btn"}),
			h.Label("button", "notificationMarkUnread", h.Attrs{"type", "button", "class", "btn-modern btn-secondary mark-unread-btn"}),
		),
	)
}

func messageItem(m demo.Message) templ.Component {
	class := "message-item-full"
	if !m.Unread {
		class += " read"
	}
	return h.El("div", h.Attrs{"class", class, "data-message-id", m.ID},
		h.El("p", nil, h.Label("strong", "modalMessageFrom", nil), h.Text(" "+m.Sender)),
		h.Label("p", m.SubjectKey, h.Attrs{"class", "message-subject"}),
		h.Label("p", m.DetailKey, h.Attrs{"class", "message-detail"}),
		h.El("small", nil, h.Text(m.Time)),
		h.Label("button", "messageViewDetails", h.Attrs{"type", "button", "class", "btn-modern btn-secondary view-message-btn"}),
	)
}

func toast() templ.Component {
	return h.El("div", h.Attrs{"class", "toast", "id", "toastNotification"},
		h.El("i", h.Attrs{"class", "fas"}),
		h.El("span", h.Attrs{"class", "toast-message"}),
	)
}
