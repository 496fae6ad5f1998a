// Package products renders the product catalogue page and its image
// gallery.
package products

import (
	"strconv"

	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/rows"
	"finitefield.org/dashpro-admin/internal/admin/templates/components"
	h "finitefield.org/dashpro-admin/internal/admin/templates/helpers"
)

// AddButtonID identifies the add-product button.
const AddButtonID = "addProductBtn"

// GalleryModalID identifies the image gallery modal.
const GalleryModalID = "imageGalleryModal"

// Page renders the products content.
func Page(data PageData) templ.Component {
	return h.Group(
		components.PageHeader(data.TitleKey, components.AddButton(AddButtonID, "productsAddProduct")),
		components.KPIGrid(data.KPIs),
		h.El("div", h.Attrs{"class", "table-card"},
			h.El("div", h.Attrs{"class", "table-header"},
				h.Label("h3", "productsProductList", h.Attrs{"class", "table-title"}),
				h.Placeholder("input", "searchProductsPlaceholder", h.Attrs{"type", "search", "class", "table-search"}),
			),
			h.El("div", h.Attrs{"class", "table-responsive"},
				h.El("table", h.Attrs{"class", "data-table", "id", rows.Products.TableID},
					h.El("thead", nil, h.El("tr", nil,
						h.Label("th", "productsTableHeaderProductID", nil),
						h.Label("th", "productsTableHeaderName", nil),
						h.Label("th", "productsTableHeaderCategory", nil),
						h.Label("th", "productsTableHeaderPrice", nil),
						h.Label("th", "productsTableHeaderStock", nil),
						h.Label("th", "productsTableHeaderStatus", nil),
						h.Label("th", "tableHeaderActions", nil),
					)),
					h.El("tbody", nil, h.Each(data.Products, row)),
				),
			),
		),
		modals(),
		components.DetailsModals(data.KPIs),
	)
}

func row(p demo.Product) templ.Component {
	status := rows.ProductBadge()
	return h.El("tr", h.Attrs{
		"data-product-id", p.ID,
		"data-name", p.Name,
		"data-category", p.Category,
		"data-price", p.Price,
		"data-stock", p.Stock,
		"data-status", p.Status,
		"data-images", strconv.Itoa(p.Images),
	},
		h.El("td", nil, h.Text(p.ID)),
		h.El("td", nil, h.Text(p.Name)),
		h.El("td", nil, components.CategoryLabel(p.Category)),
		h.El("td", nil, h.Text(p.Price)),
		h.El("td", nil, h.Text(p.Stock)),
		h.El("td", nil, components.Badge(status.Class(p.Status), status.Keys[p.Status], p.Status)),
		h.El("td", h.Attrs{"class", "actions"},
			components.ActionButton("view-images", "fa-images"),
			components.ActionButton("edit-product", "fa-edit"),
			components.ActionButton("delete-product", "fa-trash"),
		),
	)
}

func modals() templ.Component {
	spec := rows.Products
	return h.Group(
		components.Modal(spec.EditModal, "modalEditProductTitle",
			h.El("form", h.Attrs{"id", spec.EditForm, "class", "modal-form"},
				h.El("p", h.Attrs{"class", "modal-subtitle"}, h.Label("span", "productText", nil), h.Text(" "),
					h.El("strong", h.Attrs{"id", spec.EditIDDisplay})),
				components.Input(spec.EditOriginalID, "hidden"),
				components.FormGroup("productsTableHeaderName", "editProductName", components.Input("editProductName", "text")),
				components.FormGroup("productsTableHeaderCategory", "editProductCategory",
					components.Select("editProductCategory", categoryValues, categoryKeys)),
				components.FormGroup("productsTableHeaderPrice", "editProductPrice", components.Input("editProductPrice", "number")),
				components.FormGroup("productsTableHeaderStock", "editProductStock", components.Input("editProductStock", "number")),
				components.FormGroup("productsTableHeaderStatus", "editProductStatus",
					components.Select("editProductStatus", statusValues, statusKeys)),
				components.FormActions(),
			),
		),
		components.DeleteModal(spec.DeleteModal, spec.ConfirmPromptKey, spec.DeleteIDDisplay, spec.ConfirmClass),
		components.Modal(GalleryModalID, "modalImageGalleryTitle",
			h.El("h3", h.Attrs{"id", "galleryProductName"}),
			h.El("div", h.Attrs{"class", "gallery-images-container"}),
		),
	)
}
