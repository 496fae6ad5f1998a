package dashboard

import (
	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/templates/orders"
)

// PageName is the route segment of the dashboard.
const PageName = "dashboard"

// ChartCard pairs a canvas with its card title.
type ChartCard struct {
	CanvasID string
	TitleKey string
}

// PageData is the dashboard payload.
type PageData struct {
	TitleKey     string
	KPIs         []demo.KPI
	Charts       []ChartCard
	RecentOrders []demo.Order
}

var chartTitles = map[string]string{
	"revenueChart": "chartRevenueOverview",
	"salesChart":   "chartSalesDistribution",
}

// BuildPageData prepares the dashboard from the dataset.
func BuildPageData(data *demo.Dataset) PageData {
	return PageData{
		TitleKey:     "dashboardTitle",
		KPIs:         data.KPIs[PageName],
		Charts:       ChartCards(data.PageCharts[PageName], chartTitles),
		RecentOrders: orders.Recent(data.Orders),
	}
}

// ChartCards builds cards for canvases, titled from titles.
func ChartCards(canvases []string, titles map[string]string) []ChartCard {
	cards := make([]ChartCard, 0, len(canvases))
	for _, id := range canvases {
		cards = append(cards, ChartCard{CanvasID: id, TitleKey: titles[id]})
	}
	return cards
}
