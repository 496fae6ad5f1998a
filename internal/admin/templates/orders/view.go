// Package orders renders the order management page and the order table
// shared with the dashboard.
package orders

import (
	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/rows"
	"finitefield.org/dashpro-admin/internal/admin/templates/components"
	h "finitefield.org/dashpro-admin/internal/admin/templates/helpers"
)

// Page renders the orders page content.
func Page(data PageData) templ.Component {
	return h.Group(
		components.PageHeader(data.TitleKey),
		components.KPIGrid(data.KPIs),
		h.El("div", h.Attrs{"class", "table-card"},
			h.El("div", h.Attrs{"class", "table-header"},
				h.Label("h3", "ordersAllOrders", h.Attrs{"class", "table-title"}),
				h.Placeholder("input", "searchOrdersPlaceholder", h.Attrs{"type", "search", "class", "table-search"}),
			),
			Table(rows.Orders.TableID, data.Orders),
		),
		Modals(),
		components.DetailsModals(data.KPIs),
	)
}

// Table renders an orders table with row actions.
func Table(id string, orders []demo.Order) templ.Component {
	return h.El("div", h.Attrs{"class", "table-responsive"},
		h.El("table", h.Attrs{"class", "data-table", "id", id},
			h.El("thead", nil, h.El("tr", nil,
				h.Label("th", "tableHeaderOrderID", nil),
				h.Label("th", "tableHeaderCustomer", nil),
				h.Label("th", "tableHeaderProduct", nil),
				h.Label("th", "tableHeaderAmount", nil),
				h.Label("th", "tableHeaderDate", nil),
				h.Label("th", "tableHeaderStatus", nil),
				h.Label("th", "tableHeaderActions", nil),
			)),
			h.El("tbody", nil, h.Each(orders, row)),
		),
	)
}

func row(o demo.Order) templ.Component {
	badge := rows.OrderBadge()
	return h.El("tr", h.Attrs{
		"data-order-id", o.ID,
		"data-customer", o.Customer,
		"data-product", o.Products,
		"data-amount", o.Amount,
		"data-date", o.Date,
		"data-status", o.Status,
	},
		h.El("td", nil, h.Text(o.ID)),
		h.El("td", nil, h.Text(o.Customer)),
		h.El("td", nil, h.Text(o.Products)),
		h.El("td", nil, h.Text(o.Amount)),
		h.El("td", nil, h.Text(o.Date)),
		h.El("td", nil, components.Badge(badge.Class(o.Status), badge.Keys[o.Status], o.Status)),
		h.El("td", h.Attrs{"class", "actions"},
			components.ActionButton("view-order", "fa-eye"),
			components.ActionButton("edit-order", "fa-edit"),
			components.ActionButton("delete-order", "fa-trash"),
		),
	)
}

// Modals renders the view, edit and delete modals of the order table.
func Modals() templ.Component {
	spec := rows.Orders
	return h.Group(
		components.Modal(spec.ViewModal, "modalOrderDetailsTitle",
			components.Field("tableHeaderOrderID", spec.ViewID),
			components.Field("tableHeaderCustomer", "viewOrderCustomer"),
			components.Field("tableHeaderProduct", "viewOrderProduct"),
			components.Field("tableHeaderAmount", "viewOrderAmount"),
			components.Field("tableHeaderDate", "viewOrderDate"),
			components.Field("tableHeaderStatus", "viewOrderStatus"),
		),
		components.Modal(spec.EditModal, "modalEditOrderTitle",
			h.El("form", h.Attrs{"id", spec.EditForm, "class", "modal-form"},
				h.El("p", h.Attrs{"class", "modal-subtitle"}, h.Label("span", "orderText", nil), h.Text(" "),
					h.El("strong", h.Attrs{"id", spec.EditIDDisplay})),
				components.Input(spec.EditOriginalID, "hidden"),
				components.FormGroup("tableHeaderCustomer", "editCustomer", components.Input("editCustomer", "text")),
				components.FormGroup("tableHeaderProduct", "editProduct", components.Input("editProduct", "text")),
				components.FormGroup("tableHeaderAmount", "editAmount", components.Input("editAmount", "text")),
				components.FormGroup("tableHeaderDate", "editDate", components.Input("editDate", "date")),
				components.FormGroup("tableHeaderStatus", "editStatus", components.Select("editStatus", StatusValues, StatusKeys)),
				components.FormActions(),
			),
		),
		components.DeleteModal(spec.DeleteModal, spec.ConfirmPromptKey, spec.DeleteIDDisplay, spec.ConfirmClass),
	)
}
