package settings

// PageName is the route segment of the settings page.
const PageName = "settings"

// Tab is one settings pane and the form inside it.
type Tab struct {
	ID       string
	LabelKey string
	Icon     string
	FormID   string
	SaveKey  string
}

// Tabs lists the settings panes in display order.
var Tabs = []Tab{
	{ID: "generalTab", LabelKey: "settingsGeneral", Icon: "fa-sliders-h", FormID: "generalSettingsForm", SaveKey: "settingsSaveGeneral"},
	{ID: "securityTab", LabelKey: "settingsSecurity", Icon: "fa-shield-alt", FormID: "securitySettingsForm", SaveKey: "settingsSaveSecurity"},
	{ID: "notificationsTab", LabelKey: "settingsNotifications", Icon: "fa-bell", FormID: "notificationSettingsForm", SaveKey: "settingsSaveNotifications"},
	{ID: "integrationsTab", LabelKey: "settingsIntegrations", Icon: "fa-plug", FormID: "integrationSettingsForm", SaveKey: "settingsSaveIntegrations"},
}

// FormIDs returns the id of every settings form.
func FormIDs() []string {
	ids := make([]string, 0, len(Tabs))
	for _, t := range Tabs {
		ids = append(ids, t.FormID)
	}
	return ids
}

// PageData is the settings payload.
type PageData struct {
	TitleKey  string
	ActiveTab string
	Language  string
}

// BuildPageData prepares the settings page for lang.
func BuildPageData(lang string) PageData {
	return PageData{TitleKey: "menuSettings", ActiveTab: Tabs[0].ID, Language: lang}
}
