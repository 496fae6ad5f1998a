// Package analytics renders the traffic analytics page.
package analytics

import (
	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/templates/components"
	"finitefield.org/dashpro-admin/internal/admin/templates/dashboard"
	h "finitefield.org/dashpro-admin/internal/admin/templates/helpers"
)

// Page renders the analytics content.
func Page(data PageData) templ.Component {
	return h.Group(
		components.PageHeader(data.TitleKey, filters(data.Ranges, data.ActiveRange)),
		components.KPIGrid(data.KPIs),
		dashboard.Charts(data.Charts),
		h.El("div", h.Attrs{"class", "insights-grid"},
			insight("analyticsVisitorTrendsAnalysis", "analyticsVisitorTrendsAnalysisText"),
			insight("analyticsVisitorTrendsWeeklyTrend", "analyticsVisitorTrendsWeeklyTrendText"),
			insight("analyticsTrafficSourcesPrimary", "analyticsTrafficSourcesPrimaryText"),
			insight("analyticsTrafficSourcesOpportunities", "analyticsTrafficSourcesOpportunitiesText"),
		),
		components.DetailsModals(data.KPIs),
	)
}

func filters(ranges []demo.DateRange, active string) templ.Component {
	return h.El("div", h.Attrs{"class", "date-range-filter-group"}, h.Each(ranges, func(r demo.DateRange) templ.Component {
		class := "filter-btn date-filter-btn"
		if r.ID == active {
			class += " active"
		}
		return h.Label("button", r.LabelKey, h.Attrs{"type", "button", "class", class, "data-range", r.ID})
	}))
}

func insight(titleKey, textKey string) templ.Component {
	return h.El("div", h.Attrs{"class", "insight-card"},
		h.Label("h4", titleKey, nil),
		h.Label("p", textKey, nil),
	)
}
