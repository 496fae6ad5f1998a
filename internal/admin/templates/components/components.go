// Package components holds markup shared by several console pages.
package components

import (
	"strings"

	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	h "finitefield.org/dashpro-admin/internal/admin/templates/helpers"
)

// Hidden is the inline style of a closed modal.
const Hidden = "display: none;"

// ModalTitleKey derives the title key of a KPI details modal
// ("revenueModal" -> "modalRevenueTitle").
func ModalTitleKey(modalID string) string {
	return modalKey(modalID, "Title")
}

// ModalInfoKey derives the info key of a KPI details modal.
func ModalInfoKey(modalID string) string {
	return modalKey(modalID, "Info")
}

func modalKey(modalID, suffix string) string {
	base := strings.TrimSuffix(modalID, "Modal")
	if base == "" {
		return ""
	}
	return "modal" + strings.ToUpper(base[:1]) + base[1:] + suffix
}

// Modal renders a hidden modal overlay with a close button and title.
func Modal(id, titleKey string, body ...templ.Component) templ.Component {
	return h.El("div", h.Attrs{"class", "modal", "id", id, "style", Hidden},
		h.El("div", h.Attrs{"class", "modal-content"},
			h.El("span", h.Attrs{"class", "close-button", "aria-label", "close"}, h.Raw("&times;")),
			h.Label("h2", titleKey, nil),
			h.Group(body...),
		),
	)
}

// Field renders a read-only "label: value" line for view modals.
func Field(labelKey, valueID string) templ.Component {
	return h.El("p", h.Attrs{"class", "modal-field"},
		h.Label("strong", labelKey, nil), h.Text(" "),
		h.El("span", h.Attrs{"id", valueID}),
	)
}

// FormGroup renders a labelled form control.
func FormGroup(labelKey, inputID string, control templ.Component) templ.Component {
	return h.El("div", h.Attrs{"class", "form-group"},
		h.Label("label", labelKey, h.Attrs{"for", inputID}),
		control,
	)
}

// Input renders a text-like input whose name matches its id.
func Input(id, kind string) templ.Component {
	return h.El("input", h.Attrs{"type", kind, "id", id, "name", id, "class", "form-control"})
}

// Select renders a select with translated options; values stay untranslated.
func Select(id string, values []string, keys []string) templ.Component {
	opts := make([]templ.Component, 0, len(values))
	for i, v := range values {
		if i < len(keys) && keys[i] != "" {
			opts = append(opts, h.Option(v, keys[i], false))
			continue
		}
		opts = append(opts, h.El("option", h.Attrs{"value", v}, h.Text(v)))
	}
	return h.El("select", h.Attrs{"id", id, "name", id, "class", "form-control"}, opts...)
}

// FormActions renders the cancel and submit buttons of an edit form.
func FormActions() templ.Component {
	return h.El("div", h.Attrs{"class", "modal-actions"},
		h.Label("button", "modalCancel", h.Attrs{"type", "button", "class", "btn-modern btn-secondary close-modal-btn"}),
		h.Label("button", "modalSaveChanges", h.Attrs{"type", "submit", "class", "btn-modern btn-primary"}),
	)
}

// DeleteModal renders the confirmation modal used by row deletes.
func DeleteModal(id, promptKey, displayID, confirmClass string) templ.Component {
	return Modal(id, "modalDeleteTitle",
		h.El("p", nil, h.Label("span", promptKey, nil), h.Text(" "), h.El("strong", h.Attrs{"id", displayID}), h.Text("?")),
		h.El("div", h.Attrs{"class", "modal-actions"},
			h.Label("button", "modalCancel", h.Attrs{"type", "button", "class", "btn-modern btn-secondary close-modal-btn"}),
			h.Label("button", "modalDelete", h.Attrs{"type", "button", "class", "btn-modern btn-danger " + confirmClass}),
		),
	)
}

// ActionButton renders a row action icon button.
func ActionButton(class, icon string) templ.Component {
	return h.El("button", h.Attrs{"type", "button", "class", "action-btn " + class}, h.Icon(icon))
}

// KPIGrid renders summary cards whose details button opens the card modal.
func KPIGrid(cards []demo.KPI) templ.Component {
	return h.El("div", h.Attrs{"class", "cards-grid"}, h.Each(cards, kpiCard))
}

func kpiCard(k demo.KPI) templ.Component {
	return h.El("div", h.Attrs{"class", "card", "data-kpi", k.ID},
		h.El("div", h.Attrs{"class", "card-header"},
			h.Label("h3", k.LabelKey, h.Attrs{"class", "card-title"}),
			h.El("div", h.Attrs{"class", "card-icon"}, h.Icon(k.Icon)),
		),
		h.El("div", h.Attrs{"class", "card-value"}, h.Text(k.Value)),
		h.El("div", h.Attrs{"class", h.TrendClass(string(k.Trend))}, h.Icon(h.TrendIcon(string(k.Trend))), h.Text(" "+k.Change)),
		h.El("button", h.Attrs{"type", "button", "class", "btn-details", "data-modal-target", k.Modal},
			h.Label("span", "detailsBtn", nil), h.Text(" "), h.Icon("fa-arrow-right")),
	)
}

// DetailsModals renders the details modal of every card.
func DetailsModals(cards []demo.KPI) templ.Component {
	return h.Each(cards, func(k demo.KPI) templ.Component {
		if k.Modal == "" {
			return nil
		}
		return Modal(k.Modal, ModalTitleKey(k.Modal),
			h.El("div", h.Attrs{"class", "modal-chart-container"}, Canvas(k.ModalChartID())),
			h.Label("p", ModalInfoKey(k.Modal), h.Attrs{"class", "modal-info"}),
		)
	})
}

// Canvas renders an empty chart surface.
func Canvas(id string) templ.Component {
	return h.El("div", h.Attrs{"class", "chart-canvas", "id", id})
}

// ChartCard renders a chart with its options menu and download button.
func ChartCard(canvasID, titleKey string) templ.Component {
	name := strings.ToUpper(canvasID[:1]) + canvasID[1:]
	return h.El("div", h.Attrs{"class", "chart-card"},
		h.El("div", h.Attrs{"class", "chart-header"},
			h.Label("h3", titleKey, h.Attrs{"class", "chart-title"}),
			h.El("div", h.Attrs{"class", "chart-actions"},
				h.El("button", h.Attrs{"type", "button", "class", "chart-download-btn", "id", "download" + name,
					"data-chart-id", canvasID, "data-filename", canvasID + ".png"}, h.Icon("fa-download")),
				h.El("button", h.Attrs{"type", "button", "class", "chart-options-toggle", "data-chart-id", canvasID}, h.Icon("fa-ellipsis-v")),
				h.El("div", h.Attrs{"class", "chart-options-dropdown", "id", canvasID + "Dropdown"},
					h.Label("a", "chartViewData", h.Attrs{"href", "#", "data-action", "view-data", "data-chart-id", canvasID}),
					h.Label("a", "chartExportCSV", h.Attrs{"href", "#", "data-action", "export-csv", "data-chart-id", canvasID}),
				),
			),
		),
		Canvas(canvasID),
	)
}

// Badge renders a status or role tag with its translation key.
func Badge(class, key, value string) templ.Component {
	if key == "" {
		return h.El("span", h.Attrs{"class", class}, h.Text(value))
	}
	return h.Label("span", key, h.Attrs{"class", class})
}

// PageHeader renders the page title row with optional trailing actions.
func PageHeader(titleKey string, actions ...templ.Component) templ.Component {
	return h.El("div", h.Attrs{"class", "page-header"},
		h.Label("h1", titleKey, h.Attrs{"class", "page-title"}),
		h.El("div", h.Attrs{"class", "page-actions"}, actions...),
	)
}

// AddButton renders a page-level "add" button.
func AddButton(id, key string) templ.Component {
	return h.El("button", h.Attrs{"type", "button", "class", "btn-modern btn-primary add-btn", "id", id},
		h.Icon("fa-plus"), h.Text(" "), h.Label("span", key, nil))
}

var categoryKeys = map[string]string{
	"Electronics":       "categoryElectronics",
	"Apparel":           "categoryApparel",
	"Books":             "categoryBooks",
	"Home Goods":        "categoryHomeGoods",
	"Sports & Outdoors": "categorySportsOutdoors",
}

// CategoryKey returns the translation key of a product category name, or
// "" for names outside the catalog.
func CategoryKey(name string) string {
	return categoryKeys[name]
}

// CategoryLabel renders a category name as a span, translated when the
// name is a catalog category.
func CategoryLabel(name string) templ.Component {
	if key := CategoryKey(name); key != "" {
		return h.Label("span", key, nil)
	}
	return h.El("span", nil, h.Text(name))
}
