// Package users renders the user management page.
package users

import (
	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/rows"
	"finitefield.org/dashpro-admin/internal/admin/templates/components"
	h "finitefield.org/dashpro-admin/internal/admin/templates/helpers"
)

// AddButtonID identifies the add-user button.
const AddButtonID = "addUserBtn"

// Page renders the users content.
func Page(data PageData) templ.Component {
	return h.Group(
		components.PageHeader(data.TitleKey, components.AddButton(AddButtonID, "usersAddUser")),
		components.KPIGrid(data.KPIs),
		h.El("div", h.Attrs{"class", "table-card"},
			h.El("div", h.Attrs{"class", "table-header"},
				h.Label("h3", "usersUserList", h.Attrs{"class", "table-title"}),
				h.Placeholder("input", "searchUsersPlaceholder", h.Attrs{"type", "search", "class", "table-search"}),
			),
			h.El("div", h.Attrs{"class", "table-responsive"},
				h.El("table", h.Attrs{"class", "data-table", "id", rows.Users.TableID},
					h.El("thead", nil, h.El("tr", nil,
						h.Label("th", "usersTableHeaderUserID", nil),
						h.Label("th", "usersTableHeaderName", nil),
						h.Label("th", "usersTableHeaderEmail", nil),
						h.Label("th", "usersTableHeaderRole", nil),
						h.Label("th", "usersTableHeaderStatus", nil),
						h.Label("th", "usersTableHeaderRegisteredDate", nil),
						h.Label("th", "tableHeaderActions", nil),
					)),
					h.El("tbody", nil, h.Each(data.Users, row)),
				),
			),
		),
		modals(),
		components.DetailsModals(data.KPIs),
	)
}

func row(u demo.User) templ.Component {
	role, status := rows.RoleBadge(), rows.UserStatusBadge()
	return h.El("tr", h.Attrs{
		"data-user-id", u.ID,
		"data-name", u.Name,
		"data-email", u.Email,
		"data-role", u.Role,
		"data-status", u.Status,
		"data-registered-date", u.RegisteredDate,
	},
		h.El("td", nil, h.Text(u.ID)),
		h.El("td", nil, h.Text(u.Name)),
		h.El("td", nil, h.Text(u.Email)),
		h.El("td", nil, components.Badge(role.Class(u.Role), role.Keys[u.Role], u.Role)),
		h.El("td", nil, components.Badge(status.Class(u.Status), status.Keys[u.Status], u.Status)),
		h.El("td", nil, h.Text(u.RegisteredDate)),
		h.El("td", h.Attrs{"class", "actions"},
			components.ActionButton("view-user", "fa-eye"),
			components.ActionButton("edit-user", "fa-edit"),
			components.ActionButton("delete-user", "fa-trash"),
		),
	)
}

func modals() templ.Component {
	spec := rows.Users
	return h.Group(
		components.Modal(spec.ViewModal, "modalUserDetailsTitle",
			components.Field("usersTableHeaderUserID", spec.ViewID),
			components.Field("usersTableHeaderName", "viewUserName"),
			components.Field("usersTableHeaderEmail", "viewUserEmail"),
			components.Field("usersTableHeaderRole", "viewUserRole"),
			components.Field("usersTableHeaderStatus", "viewUserStatus"),
			components.Field("usersTableHeaderRegisteredDate", "viewUserRegisteredDate"),
		),
		components.Modal(spec.EditModal, "modalEditUserTitle",
			h.El("form", h.Attrs{"id", spec.EditForm, "class", "modal-form"},
				h.El("p", h.Attrs{"class", "modal-subtitle"}, h.Label("span", "userText", nil), h.Text(" "),
					h.El("strong", h.Attrs{"id", spec.EditIDDisplay})),
				components.Input(spec.EditOriginalID, "hidden"),
				components.FormGroup("usersTableHeaderName", "editUserName", components.Input("editUserName", "text")),
				components.FormGroup("usersTableHeaderEmail", "editUserEmail", components.Input("editUserEmail", "email")),
				components.FormGroup("usersTableHeaderRole", "editUserRole", components.Select("editUserRole", roleValues, roleKeys)),
				components.FormGroup("usersTableHeaderStatus", "editUserStatus", components.Select("editUserStatus", statusValues, statusKeys)),
				components.FormActions(),
			),
		),
		components.DeleteModal(spec.DeleteModal, spec.ConfirmPromptKey, spec.DeleteIDDisplay, spec.ConfirmClass),
	)
}
