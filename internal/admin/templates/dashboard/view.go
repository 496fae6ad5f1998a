// Package dashboard renders the console landing page.
package dashboard

import (
	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/templates/components"
	h "finitefield.org/dashpro-admin/internal/admin/templates/helpers"
	"finitefield.org/dashpro-admin/internal/admin/templates/orders"
)

// Page renders the dashboard content.
func Page(data PageData) templ.Component {
	return h.Group(
		h.El("div", h.Attrs{"class", "breadcrumb"},
			h.Label("span", "breadcrumbHome", nil), h.Text(" / "), h.Label("span", "breadcrumbDashboard", nil)),
		components.PageHeader(data.TitleKey),
		components.KPIGrid(data.KPIs),
		Charts(data.Charts),
		h.El("div", h.Attrs{"class", "table-card"},
			h.El("div", h.Attrs{"class", "table-header"},
				h.Label("h3", "tableRecentOrders", h.Attrs{"class", "table-title"}),
			),
			orders.Table(orders.RecentTableID, data.RecentOrders),
		),
		orders.Modals(),
		components.DetailsModals(data.KPIs),
	)
}

// Charts renders chart cards in a grid.
func Charts(cards []ChartCard) templ.Component {
	return h.El("div", h.Attrs{"class", "charts-grid"}, h.Each(cards, func(c ChartCard) templ.Component {
		return components.ChartCard(c.CanvasID, c.TitleKey)
	}))
}
