package model

import "testing"

func TestDefaultRoleGrants(t *testing.T) {
	counts := map[string]int{}
	for _, def := range DefaultRoles {
		counts[def.Code] = len(def.Select(DefaultPrivileges))
	}

	if counts[RoleMasterAdmin] != len(DefaultPrivileges) {
		t.Errorf("master admin: %d of %d privileges", counts[RoleMasterAdmin], len(DefaultPrivileges))
	}
	if want := len(DefaultPrivileges) - 4; counts[RoleAdmin] != want {
		t.Errorf("admin: got %d, want %d", counts[RoleAdmin], want)
	}
	if counts[RoleSeller] != len(SellerPrivileges) {
		t.Errorf("seller: got %d, want %d", counts[RoleSeller], len(SellerPrivileges))
	}
}

func TestHasPrivilege(t *testing.T) {
	u := User{Privileges: []Privilege{{Code: PrivSaleCreate}, {Code: PrivProductView}}}

	if !u.HasPrivilege(PrivSaleCreate) {
		t.Error("expected sale:create")
	}
	if u.HasPrivilege(PrivUserDelete) {
		t.Error("unexpected user:delete")
	}
	if (&User{}).HasPrivilege(PrivProductView) {
		t.Error("user without privileges should hold none")
	}
}
