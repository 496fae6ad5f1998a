package categories

import (
	"finitefield.org/dashpro-admin/internal/admin/demo"
)

// PageName is the route segment of the categories page.
const PageName = "categories"

// PageData is the categories page payload.
type PageData struct {
	TitleKey   string
	KPIs       []demo.KPI
	Categories []demo.Category
}

// BuildPageData prepares the categories page from the dataset.
func BuildPageData(data *demo.Dataset) PageData {
	return PageData{
		TitleKey:   "menuCategories",
		KPIs:       data.KPIs[PageName],
		Categories: data.Categories,
	}
}
