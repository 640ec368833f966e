package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "product:create"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Create Product"
}

// Privilege codes checked by the router.
const (
	PrivUserView            = "user:view"
	PrivUserCreate          = "user:create"
	PrivUserUpdate          = "user:update"
	PrivUserDelete          = "user:delete"
	PrivUserUpdatePrivilege = "user:update_privilege"
	PrivProductView         = "product:view"
	PrivProductCreate       = "product:create"
	PrivProductUpdate       = "product:update"
	PrivProductDelete       = "product:delete"
	PrivInventoryAdjust     = "inventory:adjust"
	PrivPartnerManage       = "partner:manage"
	PrivPurchaseView        = "purchase:view"
	PrivPurchaseCreate      = "purchase:create"
	PrivSaleView            = "sale:view"
	PrivSaleCreate          = "sale:create"
	PrivReportView          = "report:view"
	PrivReportExport        = "report:export"
	PrivSettingUpdate       = "setting:update"
)

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// User management
	{Code: PrivUserView, Name: "View User"},
	{Code: PrivUserCreate, Name: "Create User"},
	{Code: PrivUserUpdate, Name: "Update User"},
	{Code: PrivUserDelete, Name: "Delete User"},
	{Code: PrivUserUpdatePrivilege, Name: "Update User Privileges"},
	// Catalog and stock
	{Code: PrivProductView, Name: "View Product"},
	{Code: PrivProductCreate, Name: "Create Product"},
	{Code: PrivProductUpdate, Name: "Update Product"},
	{Code: PrivProductDelete, Name: "Delete Product"},
	{Code: PrivInventoryAdjust, Name: "Adjust Stock"},
	// Suppliers and clients
	{Code: PrivPartnerManage, Name: "Manage Suppliers and Clients"},
	// Purchases and sales
	{Code: PrivPurchaseView, Name: "View Purchase"},
	{Code: PrivPurchaseCreate, Name: "Create Purchase"},
	{Code: PrivSaleView, Name: "View Sale"},
	{Code: PrivSaleCreate, Name: "Create Sale"},
	// Reports
	{Code: PrivReportView, Name: "View Reports"},
	{Code: PrivReportExport, Name: "Export Reports"},
	// Configuration
	{Code: PrivSettingUpdate, Name: "Update Settings"},
}

// IsUserManagement reports whether code is reserved for the master admin role.
func IsUserManagement(code string) bool {
	switch code {
	case PrivUserCreate, PrivUserUpdate, PrivUserDelete, PrivUserUpdatePrivilege:
		return true
	}
	return false
}
