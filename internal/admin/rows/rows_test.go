package rows

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"finitefield.org/dashpro-admin/internal/admin/dom"
	"finitefield.org/dashpro-admin/internal/admin/ui"
)

const fixture = `<html><body>
<table id="ordersTable"><tbody>
  <tr data-order-id="ORD-001" data-customer="John Doe" data-product="Mouse" data-amount="$150.00" data-date="2023-10-26" data-status="Completed">
    <td>ORD-001</td><td>John Doe</td><td>Mouse</td><td>$150.00</td><td>2023-10-26</td>
    <td><span class="status completed" data-lang-key="statusCompleted">Completed</span></td>
    <td><button class="action-btn view-order">v</button><button class="action-btn edit-order">e</button><button class="action-btn delete-order">d</button></td>
  </tr>
  <tr data-order-id="ORD-007" data-customer="David Miller" data-product="Headset" data-amount="$199.00" data-date="2023-10-22" data-status="Completed">
    <td>ORD-007</td><td>David Miller</td><td>Headset</td><td>$199.00</td><td>2023-10-22</td>
    <td><span class="status completed">Completed</span></td>
    <td><button class="action-btn view-order">v</button><button class="action-btn edit-order">e</button><button class="action-btn delete-order" id="del7">d</button></td>
  </tr>
</tbody></table>
<table id="productsTable"><tbody>
  <tr data-product-id="P-003" data-name="Cotton T-Shirt" data-category="Apparel" data-price="19.99" data-stock="320" data-status="Active" data-images="4">
    <td>P-003</td><td>Cotton T-Shirt</td><td><span>Apparel</span></td><td>19.99</td><td>320</td>
    <td><span class="status active">Active</span></td>
    <td><button class="action-btn view-images">i</button><button class="action-btn edit-product">e</button><button class="action-btn delete-product">d</button></td>
  </tr>
</tbody></table>
<table id="categoriesTable"><tbody>
  <tr data-category-id="CAT-001" data-name="Electronics" data-total-products="120" data-last-updated="2023-10-20">
    <td>CAT-001</td><td><span data-lang-key="categoryElectronics">Electronics</span></td><td>120</td><td>2023-10-20</td>
    <td><button class="action-btn toggle-description-btn btn-primary" data-lang-key="categoriesShowDescription">Show Description</button>
        <button class="action-btn view-category">v</button><button class="action-btn edit-category">e</button></td>
  </tr>
  <tr class="category-description-row"><td colspan="5"><p data-lang-key="catDescElectronics">Gadgets.</p></td></tr>
</tbody></table>
<div class="modal" id="viewOrderModal" style="display: none;">
  <span id="viewOrderId"></span><span id="viewOrderCustomer"></span><span id="viewOrderStatus"></span>
</div>
<div class="modal" id="editOrderModal" style="display: none;">
  <form id="editOrderForm">
    <span id="editOrderIdDisplay"></span>
    <input id="editOriginalOrderId" type="hidden">
    <input id="editCustomer"><input id="editProduct"><input id="editAmount"><input id="editDate">
    <select id="editStatus"><option>Completed</option><option>Pending</option><option>Processing</option></select>
  </form>
</div>
<div class="modal" id="deleteConfirmModal" style="display: none;">
  <span id="deleteOrderIdDisplay"></span><button class="confirm-delete-btn">Delete</button>
</div>
<div class="modal" id="editProductModal" style="display: none;">
  <form id="editProductForm">
    <span id="editProductIdDisplay"></span>
    <input id="editOriginalProductId" type="hidden">
    <input id="editProductName"><input id="editProductCategory"><input id="editProductPrice"><input id="editProductStock">
    <select id="editProductStatus"><option>Active</option><option>Inactive</option><option>Low Stock</option></select>
  </form>
</div>
<div class="modal" id="viewCategoryModal" style="display: none;"><span id="viewCategoryId"></span><span id="viewCategoryDescription"></span></div>
<div class="modal" id="editCategoryModal" style="display: none;">
  <form id="editCategoryForm">
    <input id="editOriginalCategoryId" type="hidden">
    <input id="editCategoryName"><input id="editCategoryTotalProducts"><input id="editCategoryLastUpdated"><textarea id="editCategoryDescription"></textarea>
  </form>
</div>
<div class="modal" id="imageGalleryModal" style="display: none;"><h3 id="galleryProductName"></h3><div class="gallery-images-container"></div></div>
<div id="toastNotification" class="toast"><i class="fas"></i><span></span></div>
</body></html>`

var english = map[string]string{
	"orderText":                  "Order",
	"productText":                "Product",
	"categoryText":               "Category",
	"hasBeenDeleted":             "has been deleted.",
	"hasBeenUpdated":             "has been updated.",
	"modalDeleteOrderConfirm":    "Are you sure you want to delete order",
	"categoriesShowDescription":  "Show Description",
	"categoriesHideDescription":  "Hide Description",
	"statusPending":              "Pending",
	"statusActive":               "Active",
	"productsProductImages":      "Images",
	"productImagesSimulatedNote": "Default image.",
	"noDetailedDescription":      "No detailed description available.",
}

type harness struct {
	doc   *goquery.Document
	coord *ui.Coordinator
	ctl   *Controller
}

func newHarness(t *testing.T, markup string) *harness {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	coord := ui.NewCoordinator(doc, ui.Options{Scheduler: ui.NewManualScheduler()})
	t.Cleanup(coord.Close)
	text := func(key string) string {
		if v, ok := english[key]; ok {
			return v
		}
		return key
	}
	return &harness{doc: doc, coord: coord, ctl: New(coord, text)}
}

func (h *harness) button(rowAttr, id, class string) *goquery.Selection {
	return h.doc.Find("tr[" + rowAttr + "='" + id + "'] ." + class).First()
}

func TestDeleteOrderThroughConfirmModal(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	require.True(t, h.ctl.Action(Orders, h.button("data-order-id", "ORD-007", "delete-order"), nil))
	require.True(t, h.coord.ModalVisible("deleteConfirmModal"))
	require.Equal(t, "ORD-007", h.doc.Find("#deleteOrderIdDisplay").Text())

	require.True(t, h.ctl.ConfirmDelete(Orders))

	require.Equal(t, 0, h.ctl.Row(Orders, "ORD-007").Length())
	require.Equal(t, 1, h.ctl.Row(Orders, "ORD-001").Length())
	require.False(t, h.coord.ModalVisible("deleteConfirmModal"))
	toast := h.coord.Toast()
	require.Equal(t, "Order ORD-007 has been deleted.", toast.Message)
	require.Equal(t, ui.ToastSuccess, toast.Kind)

	require.False(t, h.ctl.ConfirmDelete(Orders), "confirm handler is one-shot")
}

func TestDeleteRearmReplacesStaleHandler(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	h.ctl.Action(Orders, h.button("data-order-id", "ORD-001", "delete-order"), nil)
	h.coord.CloseModal("deleteConfirmModal")
	h.ctl.Action(Orders, h.button("data-order-id", "ORD-007", "delete-order"), nil)

	require.True(t, h.ctl.ConfirmDelete(Orders))
	require.Equal(t, 1, h.ctl.Row(Orders, "ORD-001").Length())
	require.Equal(t, 0, h.ctl.Row(Orders, "ORD-007").Length())
}

func TestDeleteFallsBackToPrompt(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	h.doc.Find("#deleteConfirmModal").Remove()

	var asked []string
	decline := ui.PrompterFunc(func(msg string) bool { asked = append(asked, msg); return false })
	h.ctl.Action(Orders, h.button("data-order-id", "ORD-007", "delete-order"), decline)
	require.Equal(t, []string{"Are you sure you want to delete order ORD-007?"}, asked)
	require.Equal(t, 1, h.ctl.Row(Orders, "ORD-007").Length())

	accept := ui.PrompterFunc(func(string) bool { return true })
	h.ctl.Action(Orders, h.button("data-order-id", "ORD-007", "delete-order"), accept)
	require.Equal(t, 0, h.ctl.Row(Orders, "ORD-007").Length())
	require.Equal(t, "Order ORD-007 has been deleted.", h.coord.Toast().Message)
}

func TestViewOrderFillsModal(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	h.ctl.Action(Orders, h.button("data-order-id", "ORD-001", "view-order"), nil)

	require.True(t, h.coord.ModalVisible("viewOrderModal"))
	require.Equal(t, "ORD-001", h.doc.Find("#viewOrderId").Text())
	require.Equal(t, "John Doe", h.doc.Find("#viewOrderCustomer").Text())
	require.Equal(t, "Completed", h.doc.Find("#viewOrderStatus").Text())
}

func TestEditOrderUpdatesBadge(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	h.ctl.Action(Orders, h.button("data-order-id", "ORD-001", "edit-order"), nil)
	require.Equal(t, "ORD-001", dom.Value(h.doc.Find("#editOriginalOrderId")))
	require.Equal(t, "John Doe", dom.Value(h.doc.Find("#editCustomer")))
	require.Equal(t, "Completed", dom.Value(h.doc.Find("#editStatus")))

	dom.SetValue(h.doc.Find("#editCustomer"), "Johnny Doe")
	dom.SetValue(h.doc.Find("#editStatus"), "Pending")
	h.ctl.Submit(Orders)

	row := h.ctl.Row(Orders, "ORD-001")
	require.Equal(t, "Johnny Doe", row.AttrOr("data-customer", ""))
	require.Equal(t, "Pending", row.AttrOr("data-status", ""))
	require.Equal(t, "Johnny Doe", row.Find("td").Eq(1).Text())
	badge := row.Find(".status")
	require.Equal(t, "status pending", badge.AttrOr("class", ""))
	require.Equal(t, "statusPending", badge.AttrOr("data-lang-key", ""))
	require.Equal(t, "Pending", badge.Text())
	require.False(t, h.coord.ModalVisible("editOrderModal"))
	require.Equal(t, "Order ORD-001 has been updated.", h.coord.Toast().Message)
}

func TestEditProductPrice(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	h.ctl.Action(Products, h.button("data-product-id", "P-003", "edit-product"), nil)
	require.True(t, h.coord.ModalVisible("editProductModal"))
	require.Equal(t, "19.99", dom.Value(h.doc.Find("#editProductPrice")))

	dom.SetValue(h.doc.Find("#editProductPrice"), "49.99")
	h.ctl.Submit(Products)

	row := h.ctl.Row(Products, "P-003")
	require.Equal(t, "49.99", row.AttrOr("data-price", ""))
	require.Equal(t, "49.99", row.Find("td").Eq(3).Text())
	require.Equal(t, "Apparel", row.Find("td").Eq(2).Find("span").Text())
	require.Equal(t, "Product P-003 has been updated.", h.coord.Toast().Message)
}

func TestProductDeleteMessageCarriesIDPrefix(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	accept := ui.PrompterFunc(func(string) bool { return true })
	h.ctl.Action(Products, h.button("data-product-id", "P-003", "delete-product"), accept)
	require.Equal(t, "Product ID: P-003 has been deleted.", h.coord.Toast().Message)
}

func TestToggleDescriptionTwiceRestoresState(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	btn := h.button("data-category-id", "CAT-001", "toggle-description-btn")
	desc := h.doc.Find(".category-description-row")

	h.ctl.Action(Categories, btn, nil)
	require.True(t, desc.HasClass("show-description"))
	require.Equal(t, "Hide Description", btn.Text())
	require.True(t, btn.HasClass("btn-secondary"))

	h.ctl.Action(Categories, btn, nil)
	require.False(t, desc.HasClass("show-description"))
	require.Equal(t, "Show Description", btn.Text())
	require.Equal(t, "categoriesShowDescription", btn.AttrOr("data-lang-key", ""))
	require.True(t, btn.HasClass("btn-primary"))
	require.False(t, btn.HasClass("btn-secondary"))
}

func TestEditCategoryWritesDescriptionRow(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	h.ctl.Action(Categories, h.button("data-category-id", "CAT-001", "view-category"), nil)
	require.Equal(t, "Gadgets.", h.doc.Find("#viewCategoryDescription").Text())

	h.ctl.Action(Categories, h.button("data-category-id", "CAT-001", "edit-category"), nil)
	dom.SetValue(h.doc.Find("#editCategoryName"), "Home & Garden")
	dom.SetValue(h.doc.Find("#editCategoryDescription"), "Everything outdoors.")
	h.ctl.Submit(Categories)

	row := h.ctl.Row(Categories, "CAT-001")
	name := row.Find("td").Eq(1).Find("span")
	require.Equal(t, "Home & Garden", name.Text())
	_, keyed := name.Attr("data-lang-key")
	require.False(t, keyed)

	desc := row.Next()
	require.Equal(t, "Everything outdoors.", desc.Find("p").Text())
	require.Equal(t, "homegarden", desc.AttrOr("data-category", ""))
}

func TestToggleWithoutDescriptionRow(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	h.doc.Find(".category-description-row").Remove()
	h.ctl.Action(Categories, h.button("data-category-id", "CAT-001", "toggle-description-btn"), nil)

	toast := h.coord.Toast()
	require.Equal(t, "No detailed description available.", toast.Message)
	require.Equal(t, ui.ToastInfo, toast.Kind)
}

func TestGalleryOpensWithTitle(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	h.ctl.Action(Products, h.button("data-product-id", "P-003", "view-images"), nil)

	require.True(t, h.coord.ModalVisible("imageGalleryModal"))
	require.Equal(t, "Cotton T-Shirt Images", h.doc.Find("#galleryProductName").Text())
	img := h.doc.Find(".gallery-images-container img")
	require.Equal(t, DefaultGalleryImage, img.AttrOr("src", ""))
	require.Equal(t, "Cotton T-Shirt", img.AttrOr("alt", ""))
}

func TestActionIgnoresUnknownButtons(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fixture)
	require.False(t, h.ctl.Action(Orders, h.doc.Find("#viewOrderId"), nil))
	require.False(t, h.ctl.Action(Orders, h.button("data-product-id", "P-003", "edit-product"), nil))
}
