package products

import (
	"finitefield.org/dashpro-admin/internal/admin/demo"
)

// PageName is the route segment of the products page.
const PageName = "products"

// PageData is the products page payload.
type PageData struct {
	TitleKey string
	KPIs     []demo.KPI
	Products []demo.Product
}

// BuildPageData prepares the products page from the dataset.
func BuildPageData(data *demo.Dataset) PageData {
	return PageData{
		TitleKey: "menuProducts",
		KPIs:     data.KPIs[PageName],
		Products: data.Products,
	}
}

var (
	categoryValues = []string{"Electronics", "Apparel", "Books", "Home Goods", "Sports & Outdoors"}
	categoryKeys   = []string{"categoryElectronics", "categoryApparel", "categoryBooks", "categoryHomeGoods", "categorySportsOutdoors"}
	statusValues   = []string{"Active", "Inactive", "Low Stock"}
	statusKeys     = []string{"statusActive", "statusInactive", "statusLowStock"}
)
