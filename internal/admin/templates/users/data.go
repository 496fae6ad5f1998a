package users

import (
	"finitefield.org/dashpro-admin/internal/admin/demo"
)

// PageName is the route segment of the users page.
const PageName = "users"

// PageData is the users page payload.
type PageData struct {
	TitleKey string
	KPIs     []demo.KPI
	Users    []demo.User
}

// BuildPageData prepares the users page from the dataset.
func BuildPageData(data *demo.Dataset) PageData {
	return PageData{
		TitleKey: "menuUsers",
		KPIs:     data.KPIs[PageName],
		Users:    data.Users,
	}
}

var (
	roleValues   = []string{"Admin", "Editor", "Customer"}
	roleKeys     = []string{"roleAdmin", "roleEditor", "roleCustomer"}
	statusValues = []string{"Active", "Inactive", "Pending"}
	statusKeys   = []string{"statusActive", "statusInactive", "statusPending"}
)
