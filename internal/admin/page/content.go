package page

import (
	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/templates/analytics"
	"finitefield.org/dashpro-admin/internal/admin/templates/categories"
	"finitefield.org/dashpro-admin/internal/admin/templates/dashboard"
	"finitefield.org/dashpro-admin/internal/admin/templates/help"
	"finitefield.org/dashpro-admin/internal/admin/templates/orders"
	"finitefield.org/dashpro-admin/internal/admin/templates/products"
	"finitefield.org/dashpro-admin/internal/admin/templates/settings"
	"finitefield.org/dashpro-admin/internal/admin/templates/users"
)

// content is a rendered page body and the key of its document title.
type content struct {
	titleKey string
	body     templ.Component
}

type builder func(data *demo.Dataset, lang string) content

var builders = map[string]builder{
	dashboard.PageName: func(data *demo.Dataset, _ string) content {
		pd := dashboard.BuildPageData(data)
		return content{pd.TitleKey, dashboard.Page(pd)}
	},
	analytics.PageName: func(data *demo.Dataset, _ string) content {
		pd := analytics.BuildPageData(data)
		return content{pd.TitleKey, analytics.Page(pd)}
	},
	orders.PageName: func(data *demo.Dataset, _ string) content {
		pd := orders.BuildPageData(data)
		return content{pd.TitleKey, orders.Page(pd)}
	},
	users.PageName: func(data *demo.Dataset, _ string) content {
		pd := users.BuildPageData(data)
		return content{pd.TitleKey, users.Page(pd)}
	},
	products.PageName: func(data *demo.Dataset, _ string) content {
		pd := products.BuildPageData(data)
		return content{pd.TitleKey, products.Page(pd)}
	},
	categories.PageName: func(data *demo.Dataset, _ string) content {
		pd := categories.BuildPageData(data)
		return content{pd.TitleKey, categories.Page(pd)}
	},
	settings.PageName: func(_ *demo.Dataset, lang string) content {
		pd := settings.BuildPageData(lang)
		return content{pd.TitleKey, settings.Page(pd)}
	},
	help.PageName: func(_ *demo.Dataset, _ string) content {
		pd := help.BuildPageData()
		return content{pd.TitleKey, help.Page(pd)}
	},
}

// Names lists every page in navigation order.
var Names = []string{
	dashboard.PageName,
	analytics.PageName,
	orders.PageName,
	users.PageName,
	products.PageName,
	categories.PageName,
	settings.PageName,
	help.PageName,
}

// Known reports whether name is a console page.
func Known(name string) bool {
	_, ok := builders[name]
	return ok
}
