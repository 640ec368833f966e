package model

// Role groups the privileges a new user starts with.
type Role struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Code        string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name        string      `gorm:"type:varchar(100)" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Privileges  []Privilege `gorm:"many2many:role_privileges;" json:"privileges,omitempty"`
}

const (
	RoleMasterAdmin = "MASTER_ADMIN"
	RoleAdmin       = "ADMIN"
	RoleSeller      = "SELLER"
)

// SellerPrivileges is the fixed privilege set of the SELLER role.
var SellerPrivileges = []string{PrivProductView, PrivSaleView, PrivSaleCreate, PrivReportView}

// RoleDefinition is a built-in role together with the rule that picks its
// privileges when the role is first seeded.
type RoleDefinition struct {
	Code        string
	Name        string
	Description string
	Grants      func(privilege string) bool
}

func (d RoleDefinition) Role() Role {
	return Role{Code: d.Code, Name: d.Name, Description: d.Description}
}

// Select filters privs down to the ones this role is granted.
func (d RoleDefinition) Select(privs []Privilege) []Privilege {
	var out []Privilege
	for _, p := range privs {
		if d.Grants(p.Code) {
			out = append(out, p)
		}
	}
	return out
}

var DefaultRoles = []RoleDefinition{
	{
		Code:        RoleMasterAdmin,
		Name:        "Administrador general",
		Description: "Acceso completo, incluida la gestión de usuarios",
		Grants:      func(string) bool { return true },
	},
	{
		Code:        RoleAdmin,
		Name:        "Administrador",
		Description: "Gestiona catálogo, stock, compras, ventas e informes",
		Grants:      func(code string) bool { return !IsUserManagement(code) },
	},
	{
		Code:        RoleSeller,
		Name:        "Vendedor",
		Description: "Punto de venta",
		Grants:      func(code string) bool { return containsCode(SellerPrivileges, code) },
	},
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
