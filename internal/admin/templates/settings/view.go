// Package settings renders the tabbed application settings page.
package settings

import (
	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/templates/components"
	h "finitefield.org/dashpro-admin/internal/admin/templates/helpers"
)

// Page renders the settings content.
func Page(data PageData) templ.Component {
	buttons := make([]templ.Component, 0, len(Tabs))
	panes := make([]templ.Component, 0, len(Tabs))
	for _, tab := range Tabs {
		btnClass, paneClass := "tab-btn tab-button", "tab-pane"
		if tab.ID == data.ActiveTab {
			btnClass += " active"
			paneClass += " active"
		}
		buttons = append(buttons, h.El("button", h.Attrs{"type", "button", "class", btnClass, "data-tab-target", tab.ID},
			h.Icon(tab.Icon), h.Text(" "), h.Label("span", tab.LabelKey, nil)))
		panes = append(panes, h.El("div", h.Attrs{"class", paneClass, "id", tab.ID},
			h.El("form", h.Attrs{"id", tab.FormID, "class", "settings-form"},
				fields(tab.ID, data),
				h.Label("button", tab.SaveKey, h.Attrs{"type", "submit", "class", "btn-modern btn-primary"}),
			),
		))
	}
	return h.Group(
		components.PageHeader(data.TitleKey),
		h.El("div", h.Attrs{"class", "settings-container"},
			h.El("div", h.Attrs{"class", "settings-tabs"}, buttons...),
			h.El("div", h.Attrs{"class", "settings-content"}, panes...),
		),
	)
}

func fields(tab string, data PageData) templ.Component {
	switch tab {
	case "generalTab":
		return h.Group(
			h.Label("h3", "settingsGeneralAppSettings", nil),
			components.FormGroup("settingsSiteName", "siteName", h.El("input", h.Attrs{"type", "text", "id", "siteName", "name", "siteName", "class", "form-control", "value", "DashPro"})),
			components.FormGroup("settingsDefaultLanguage", "defaultLanguage",
				h.El("select", h.Attrs{"id", "defaultLanguage", "name", "defaultLanguage", "class", "form-control"},
					h.Option("en", "languageEnglish", data.Language == "en"),
					h.Option("id", "languageIndonesian", data.Language == "id"),
				)),
			components.FormGroup("settingsTimezone", "timezone",
				components.Select("timezone", []string{"UTC", "Asia/Jakarta", "America/New_York", "Europe/London"},
					[]string{"timezoneUTC", "timezoneJakarta", "timezoneNewYork", "timezoneLondon"})),
			components.FormGroup("settingsDefaultCurrency", "defaultCurrency",
				components.Select("defaultCurrency", []string{"USD", "IDR", "EUR"}, nil)),
			checkbox("maintenanceMode", "settingsMaintenanceMode", ""),
		)
	case "securityTab":
		return h.Group(
			h.Label("h3", "settingsAccountSecurity", nil),
			checkbox("twoFactorAuth", "settingsTwoFactorAuth", ""),
			components.FormGroup("settingsPasswordPolicy", "passwordPolicy",
				components.Select("passwordPolicy", []string{"weak", "medium", "strong"}, []string{"policyWeak", "policyMedium", "policyStrong"})),
			components.FormGroup("settingsSessionTimeout", "sessionTimeout", components.Input("sessionTimeout", "number")),
			components.FormGroup("settingsIPWhitelist", "ipWhitelist",
				h.Placeholder("textarea", "settingsIPWhitelistPlaceholder", h.Attrs{"id", "ipWhitelist", "name", "ipWhitelist", "class", "form-control", "rows", "3"})),
			h.Label("small", "settingsIPWhitelistHint", h.Attrs{"class", "form-hint"}),
		)
	case "notificationsTab":
		return h.Group(
			h.Label("h3", "settingsNotificationPreferences", nil),
			checkbox("emailNotifications", "settingsEmailNotifications", "settingsEmailNotificationsHint"),
			checkbox("pushNotifications", "settingsPushNotifications", "settingsPushNotificationsHint"),
			checkbox("smsNotifications", "settingsSMSNotifications", "settingsSMSNotificationsHint"),
		)
	default:
		return h.Group(
			h.Label("h3", "settingsThirdPartyIntegrations", nil),
			h.El("div", h.Attrs{"class", "integration-item"},
				h.Label("h4", "settingsGoogleAnalytics", nil),
				h.Label("p", "settingsGoogleAnalyticsText", nil),
				components.FormGroup("settingsTrackingID", "gaTrackingId", components.Input("gaTrackingId", "text")),
				checkbox("gaEnabled", "settingsEnableDisableGA", ""),
			),
			h.El("div", h.Attrs{"class", "integration-item"},
				h.Label("h4", "settingsMailchimp", nil),
				h.Label("p", "settingsMailchimpText", nil),
				components.FormGroup("settingsAPIKey", "mailchimpApiKey", components.Input("mailchimpApiKey", "password")),
				checkbox("mailchimpEnabled", "settingsEnableDisableMailchimp", ""),
			),
		)
	}
}

func checkbox(id, labelKey, hintKey string) templ.Component {
	var hint templ.Component
	if hintKey != "" {
		hint = h.Label("small", hintKey, h.Attrs{"class", "form-hint"})
	}
	return h.El("div", h.Attrs{"class", "form-group form-check"},
		h.El("input", h.Attrs{"type", "checkbox", "id", id, "name", id}),
		h.Label("label", labelKey, h.Attrs{"for", id}),
		hint,
	)
}
