package rows

// Badge styles a cell value as a tag whose class follows the value.
type Badge struct {
	// Base is the class every tag carries ("status", "role-tag").
	Base string
	// Classes maps a value to its modifier class.
	Classes map[string]string
	// Keys maps a value to its translation key.
	Keys map[string]string
}

// Class returns the full class attribute for value.
func (b Badge) Class(value string) string {
	if mod, ok := b.Classes[value]; ok {
		return b.Base + " " + mod
	}
	return b.Base
}

// Field binds one row data attribute to the view modal, the edit form and
// the visible table cell.
type Field struct {
	// Attr is the data attribute name without the "data-" prefix.
	Attr string
	// View is the id of the read-only element in the view modal.
	View string
	// Edit is the id of the input in the edit form.
	Edit string
	// Cell is the zero-based column index, or -1 when not shown.
	Cell int
	// Span writes the value into the cell's first span.
	Span bool
	// Badge styles the cell as a tag.
	Badge *Badge
	// Description stores the value in the row's description row.
	Description bool
}

// Spec describes one CRUD table.
type Spec struct {
	Name    string
	TableID string
	// IDAttr is the data attribute carrying the row identifier.
	IDAttr string
	// SubjectKey names the entity in toasts ("Order ORD-007 ...").
	SubjectKey string
	// DeletedIDPrefix is written between subject and id in the delete toast.
	DeletedIDPrefix string

	ViewClass   string
	EditClass   string
	DeleteClass string

	ViewModal string
	ViewID    string

	EditModal      string
	EditForm       string
	EditIDDisplay  string
	EditOriginalID string

	DeleteModal     string
	DeleteIDDisplay string
	ConfirmClass    string
	// ConfirmPromptKey prefixes the native prompt used when the delete
	// modal is missing.
	ConfirmPromptKey string

	// GalleryClass opens the image gallery for the row when set.
	GalleryClass string
	// ToggleClass flips the row's description row when set.
	ToggleClass string

	Fields []Field
}

// Attribute returns the full data attribute name of the row id.
func (s Spec) Attribute() string {
	return "data-" + s.IDAttr
}

var (
	statusOrder = &Badge{
		Base:    "status",
		Classes: map[string]string{"Completed": "completed", "Pending": "pending", "Processing": "processing"},
		Keys:    map[string]string{"Completed": "statusCompleted", "Pending": "statusPending", "Processing": "statusProcessing"},
	}
	statusUser = &Badge{
		Base:    "status",
		Classes: map[string]string{"Active": "active", "Inactive": "inactive", "Pending": "pending"},
		Keys:    map[string]string{"Active": "statusActive", "Inactive": "statusInactive", "Pending": "statusPending"},
	}
	statusProduct = &Badge{
		Base:    "status",
		Classes: map[string]string{"Active": "active", "Inactive": "inactive", "Low Stock": "pending"},
		Keys:    map[string]string{"Active": "statusActive", "Inactive": "statusInactive", "Low Stock": "statusLowStock"},
	}
	roleUser = &Badge{
		Base:    "role-tag",
		Classes: map[string]string{"Admin": "admin", "Editor": "editor", "Customer": "customer"},
		Keys:    map[string]string{"Admin": "roleAdmin", "Editor": "roleEditor", "Customer": "roleCustomer"},
	}
)

// OrderBadge styles order status cells.
func OrderBadge() Badge { return *statusOrder }

// UserStatusBadge styles user status cells.
func UserStatusBadge() Badge { return *statusUser }

// ProductBadge styles product status cells.
func ProductBadge() Badge { return *statusProduct }

// RoleBadge styles user role cells.
func RoleBadge() Badge { return *roleUser }

// Orders describes #ordersTable.
var Orders = Spec{
	Name:             "orders",
	TableID:          "ordersTable",
	IDAttr:           "order-id",
	SubjectKey:       "orderText",
	ViewClass:        "view-order",
	EditClass:        "edit-order",
	DeleteClass:      "delete-order",
	ViewModal:        "viewOrderModal",
	ViewID:           "viewOrderId",
	EditModal:        "editOrderModal",
	EditForm:         "editOrderForm",
	EditIDDisplay:    "editOrderIdDisplay",
	EditOriginalID:   "editOriginalOrderId",
	DeleteModal:      "deleteConfirmModal",
	DeleteIDDisplay:  "deleteOrderIdDisplay",
	ConfirmClass:     "confirm-delete-btn",
	ConfirmPromptKey: "modalDeleteOrderConfirm",
	Fields: []Field{
		{Attr: "customer", View: "viewOrderCustomer", Edit: "editCustomer", Cell: 1},
		{Attr: "product", View: "viewOrderProduct", Edit: "editProduct", Cell: 2},
		{Attr: "amount", View: "viewOrderAmount", Edit: "editAmount", Cell: 3},
		{Attr: "date", View: "viewOrderDate", Edit: "editDate", Cell: 4},
		{Attr: "status", View: "viewOrderStatus", Edit: "editStatus", Cell: 5, Badge: statusOrder},
	},
}

// Users describes #usersTable.
var Users = Spec{
	Name:             "users",
	TableID:          "usersTable",
	IDAttr:           "user-id",
	SubjectKey:       "userText",
	ViewClass:        "view-user",
	EditClass:        "edit-user",
	DeleteClass:      "delete-user",
	ViewModal:        "viewUserModal",
	ViewID:           "viewUserId",
	EditModal:        "editUserModal",
	EditForm:         "editUserForm",
	EditIDDisplay:    "editUserIdDisplay",
	EditOriginalID:   "editOriginalUserId",
	DeleteModal:      "deleteUserConfirmModal",
	DeleteIDDisplay:  "deleteUserIdDisplay",
	ConfirmClass:     "confirm-delete-user-btn",
	ConfirmPromptKey: "modalDeleteUserConfirm",
	Fields: []Field{
		{Attr: "name", View: "viewUserName", Edit: "editUserName", Cell: 1},
		{Attr: "email", View: "viewUserEmail", Edit: "editUserEmail", Cell: 2},
		{Attr: "role", View: "viewUserRole", Edit: "editUserRole", Cell: 3, Badge: roleUser},
		{Attr: "status", View: "viewUserStatus", Edit: "editUserStatus", Cell: 4, Badge: statusUser},
		{Attr: "registered-date", View: "viewUserRegisteredDate", Cell: -1},
	},
}

// Products describes #productsTable.
var Products = Spec{
	Name:             "products",
	TableID:          "productsTable",
	IDAttr:           "product-id",
	SubjectKey:       "productText",
	DeletedIDPrefix:  "ID:",
	EditClass:        "edit-product",
	DeleteClass:      "delete-product",
	EditModal:        "editProductModal",
	EditForm:         "editProductForm",
	EditIDDisplay:    "editProductIdDisplay",
	EditOriginalID:   "editOriginalProductId",
	DeleteModal:      "deleteProductConfirmModal",
	DeleteIDDisplay:  "deleteProductIdDisplay",
	ConfirmClass:     "confirm-delete-product-btn",
	ConfirmPromptKey: "modalDeleteProductConfirm",
	GalleryClass:     "view-images",
	Fields: []Field{
		{Attr: "name", Edit: "editProductName", Cell: 1},
		{Attr: "category", Edit: "editProductCategory", Cell: 2, Span: true},
		{Attr: "price", Edit: "editProductPrice", Cell: 3},
		{Attr: "stock", Edit: "editProductStock", Cell: 4},
		{Attr: "status", Edit: "editProductStatus", Cell: 5, Badge: statusProduct},
	},
}

// Categories describes #categoriesTable. Every category row is followed by
// a description row.
var Categories = Spec{
	Name:             "categories",
	TableID:          "categoriesTable",
	IDAttr:           "category-id",
	SubjectKey:       "categoryText",
	ViewClass:        "view-category",
	EditClass:        "edit-category",
	DeleteClass:      "delete-category",
	ViewModal:        "viewCategoryModal",
	ViewID:           "viewCategoryId",
	EditModal:        "editCategoryModal",
	EditForm:         "editCategoryForm",
	EditIDDisplay:    "editCategoryIdDisplay",
	EditOriginalID:   "editOriginalCategoryId",
	DeleteModal:      "deleteCategoryConfirmModal",
	DeleteIDDisplay:  "deleteCategoryIdDisplay",
	ConfirmClass:     "confirm-delete-category-btn",
	ConfirmPromptKey: "modalDeleteCategoryConfirm",
	ToggleClass:      "toggle-description-btn",
	Fields: []Field{
		{Attr: "name", View: "viewCategoryName", Edit: "editCategoryName", Cell: 1, Span: true},
		{Attr: "total-products", View: "viewCategoryTotalProducts", Edit: "editCategoryTotalProducts", Cell: 2},
		{Attr: "last-updated", View: "viewCategoryLastUpdated", Edit: "editCategoryLastUpdated", Cell: 3},
		{Attr: "description", View: "viewCategoryDescription", Edit: "editCategoryDescription", Cell: -1, Description: true},
	},
}

// RecentOrders is Orders bound to the dashboard's recent orders table.
var RecentOrders = func() Spec {
	s := Orders
	s.Name = "recentOrders"
	s.TableID = "recentOrdersTable"
	return s
}()

// All lists every table spec.
var All = []Spec{Orders, RecentOrders, Users, Products, Categories}
