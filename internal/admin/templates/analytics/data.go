package analytics

import (
	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/templates/dashboard"
)

// PageName is the route segment of the analytics page.
const PageName = "analytics"

// DefaultRange is the filter active on first render.
const DefaultRange = "last30"

// PageData is the analytics payload.
type PageData struct {
	TitleKey    string
	KPIs        []demo.KPI
	Ranges      []demo.DateRange
	ActiveRange string
	Charts      []dashboard.ChartCard
}

var chartTitles = map[string]string{
	"visitorTrendsChart":  "analyticsVisitorTrends",
	"trafficSourcesChart": "analyticsTrafficSources",
}

// BuildPageData prepares the analytics page from the dataset.
func BuildPageData(data *demo.Dataset) PageData {
	return PageData{
		TitleKey:    "menuAnalytics",
		KPIs:        data.KPIs[PageName],
		Ranges:      data.Ranges,
		ActiveRange: DefaultRange,
		Charts:      dashboard.ChartCards(data.PageCharts[PageName], chartTitles),
	}
}
