package orders

import (
	"finitefield.org/dashpro-admin/internal/admin/demo"
)

// PageName is the route segment of the orders page.
const PageName = "orders"

// RecentTableID is the id of the dashboard's recent orders table.
const RecentTableID = "recentOrdersTable"

// RecentLimit caps the dashboard's recent orders table.
const RecentLimit = 5

// PageData is the orders page payload.
type PageData struct {
	TitleKey string
	KPIs     []demo.KPI
	Orders   []demo.Order
}

// BuildPageData prepares the orders page from the dataset.
func BuildPageData(data *demo.Dataset) PageData {
	return PageData{
		TitleKey: "ordersPageTitle",
		KPIs:     data.KPIs[PageName],
		Orders:   data.Orders,
	}
}

// Recent returns the first RecentLimit orders.
func Recent(orders []demo.Order) []demo.Order {
	if len(orders) > RecentLimit {
		return orders[:RecentLimit]
	}
	return orders
}

// StatusValues lists the order statuses offered by the edit form.
var StatusValues = []string{"Completed", "Pending", "Processing"}

// StatusKeys are the translation keys of StatusValues.
var StatusKeys = []string{"statusCompleted", "statusPending", "statusProcessing"}
