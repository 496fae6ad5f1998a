// Package categories renders the product categories page. Every category
// with a description is followed by a collapsible description row.
package categories

import (
	"strconv"

	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/rows"
	"finitefield.org/dashpro-admin/internal/admin/templates/components"
	h "finitefield.org/dashpro-admin/internal/admin/templates/helpers"
)

// AddButtonID identifies the add-category button.
const AddButtonID = "addCategoryBtn"

const columns = 5

// Page renders the categories content.
func Page(data PageData) templ.Component {
	return h.Group(
		components.PageHeader(data.TitleKey, components.AddButton(AddButtonID, "categoriesAddCategory")),
		components.KPIGrid(data.KPIs),
		h.El("div", h.Attrs{"class", "table-card"},
			h.El("div", h.Attrs{"class", "table-header"},
				h.Label("h3", "categoriesProductCategories", h.Attrs{"class", "table-title"}),
				h.Placeholder("input", "searchCategoriesPlaceholder", h.Attrs{"type", "search", "class", "table-search"}),
			),
			h.El("div", h.Attrs{"class", "table-responsive"},
				h.El("table", h.Attrs{"class", "data-table", "id", rows.Categories.TableID},
					h.El("thead", nil, h.El("tr", nil,
						h.Label("th", "categoriesTableHeaderCategoryID", nil),
						h.Label("th", "categoriesTableHeaderName", nil),
						h.Label("th", "categoriesTableHeaderTotalProducts", nil),
						h.Label("th", "categoriesTableHeaderLastUpdated", nil),
						h.Label("th", "tableHeaderActions", nil),
					)),
					h.El("tbody", nil, h.Each(data.Categories, row)),
				),
			),
		),
		modals(),
		components.DetailsModals(data.KPIs),
	)
}

func row(c demo.Category) templ.Component {
	total := strconv.Itoa(c.TotalProducts)
	main := h.El("tr", h.Attrs{
		"data-category-id", c.ID,
		"data-name", c.Name,
		"data-total-products", total,
		"data-last-updated", c.LastUpdated,
	},
		h.El("td", nil, h.Text(c.ID)),
		h.El("td", nil, name(c)),
		h.El("td", nil, h.Text(total)),
		h.El("td", nil, h.Text(c.LastUpdated)),
		h.El("td", h.Attrs{"class", "actions"},
			h.Label("button", "categoriesShowDescription", h.Attrs{"type", "button", "class", "btn-modern btn-primary btn-sm toggle-description-btn"}),
			components.ActionButton("view-category", "fa-eye"),
			components.ActionButton("edit-category", "fa-edit"),
			components.ActionButton("delete-category", "fa-trash"),
		),
	)
	if c.DescriptionKey == "" {
		return main
	}
	return h.Group(main,
		h.El("tr", h.Attrs{"class", "category-description-row", "data-category", h.Slug(c.Name)},
			h.El("td", h.Attrs{"colspan", strconv.Itoa(columns)},
				h.Label("p", c.DescriptionKey, nil),
			),
		),
	)
}

func name(c demo.Category) templ.Component {
	if c.NameKey != "" {
		return h.Label("span", c.NameKey, nil)
	}
	return h.El("span", nil, h.Text(c.Name))
}

func modals() templ.Component {
	spec := rows.Categories
	return h.Group(
		components.Modal(spec.ViewModal, "modalCategoryDetailsTitle",
			components.Field("categoriesTableHeaderCategoryID", spec.ViewID),
			components.Field("modalCategoryName", "viewCategoryName"),
			components.Field("categoriesTableHeaderTotalProducts", "viewCategoryTotalProducts"),
			components.Field("categoriesTableHeaderLastUpdated", "viewCategoryLastUpdated"),
			components.Field("modalDescription", "viewCategoryDescription"),
		),
		components.Modal(spec.EditModal, "modalEditCategoryTitle",
			h.El("form", h.Attrs{"id", spec.EditForm, "class", "modal-form"},
				h.El("p", h.Attrs{"class", "modal-subtitle"}, h.Label("span", "categoryText", nil), h.Text(" "),
					h.El("strong", h.Attrs{"id", spec.EditIDDisplay})),
				components.Input(spec.EditOriginalID, "hidden"),
				components.FormGroup("modalCategoryName", "editCategoryName", components.Input("editCategoryName", "text")),
				components.FormGroup("categoriesTableHeaderTotalProducts", "editCategoryTotalProducts",
					components.Input("editCategoryTotalProducts", "number")),
				components.FormGroup("categoriesTableHeaderLastUpdated", "editCategoryLastUpdated",
					components.Input("editCategoryLastUpdated", "date")),
				components.FormGroup("modalDescription", "editCategoryDescription",
					h.El("textarea", h.Attrs{"id", "editCategoryDescription", "name", "editCategoryDescription", "class", "form-control", "rows", "4"})),
				components.FormActions(),
			),
		),
		components.DeleteModal(spec.DeleteModal, spec.ConfirmPromptKey, spec.DeleteIDDisplay, spec.ConfirmClass),
	)
}
