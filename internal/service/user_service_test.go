package service

import (
	"errors"
	"testing"

	"go-inventario/internal/model"
	"go-inventario/internal/repository"

	"github.com/google/uuid"
)

func newUserFixture(t *testing.T) (UserService, repository.RoleRepository) {
	t.Helper()
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	roles := repository.NewRoleRepo(db)
	privileges := repository.NewPrivilegeRepo(db)
	seeder := AccessSeeder{Users: users, Roles: roles, Privileges: privileges, Log: quietLogger()}
	if err := seeder.Seed("admin@example.com", "admin123"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewUserService(users, privileges, roles), roles
}

func TestSeedRoles(t *testing.T) {
	_, roles := newUserFixture(t)

	admin, err := roles.FindByCode(model.RoleAdmin)
	if err != nil {
		t.Fatalf("admin role: %v", err)
	}
	for _, p := range admin.Privileges {
		if model.IsUserManagement(p.Code) {
			t.Errorf("ADMIN must not hold %s", p.Code)
		}
	}

	seller, _ := roles.FindByCode(model.RoleSeller)
	if len(seller.Privileges) != len(model.SellerPrivileges) {
		t.Errorf("SELLER privileges = %d, want %d", len(seller.Privileges), len(model.SellerPrivileges))
	}
}

func TestCreateAndUpdateUser(t *testing.T) {
	svc, roles := newUserFixture(t)
	seller, _ := roles.FindByCode(model.RoleSeller)
	admin, _ := roles.FindByCode(model.RoleAdmin)

	user, err := svc.CreateUser(&CreateUserRequest{
		UserProfile: UserProfile{Email: " Ana@Example.com ", FullName: "Ana", RoleID: seller.ID},
		Password: "secreto",
	}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if len(user.Privileges) != len(model.SellerPrivileges) {
		t.Errorf("new user should get role privileges, got %d", len(user.Privileges))
	}

	_, err = svc.CreateUser(&CreateUserRequest{
		UserProfile: UserProfile{Email: "ana@example.com", FullName: "Ana 2", RoleID: seller.ID},
		Password: "secreto",
	}, testActor)
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate email: got %v", err)
	}

	_, err = svc.CreateUser(&CreateUserRequest{
		UserProfile: UserProfile{Email: "luis@example.com", FullName: "Luis", RoleID: 999},
		Password: "secreto",
	}, testActor)
	if !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("unknown role: got %v", err)
	}

	inactive := false
	updated, err := svc.UpdateUser(user.ID, &UpdateUserRequest{
		UserProfile: UserProfile{Email: "ana@example.com", FullName: "Ana García", RoleID: admin.ID},
		IsActive: &inactive,
	}, testActor)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != "Ana García" || updated.IsActive || updated.RoleCode() != model.RoleAdmin {
		t.Errorf("updated user = %+v", updated)
	}
	if len(updated.Privileges) != len(admin.Privileges) {
		t.Errorf("role change should reset privileges: got %d want %d", len(updated.Privileges), len(admin.Privileges))
	}
}

func TestUpdateUserPrivileges(t *testing.T) {
	svc, roles := newUserFixture(t)
	seller, _ := roles.FindByCode(model.RoleSeller)
	user, err := svc.CreateUser(&CreateUserRequest{
		UserProfile: UserProfile{Email: "pepe@example.com", FullName: "Pepe", RoleID: seller.ID},
		Password: "secreto",
	}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateUserPrivileges(user.ID, []string{model.PrivProductView, model.PrivInventoryAdjust}, testActor)
	if err != nil {
		t.Fatalf("update privileges: %v", err)
	}
	if len(updated.Privileges) != 2 {
		t.Errorf("privileges = %v", updated.GetPrivilegeCodes())
	}

	if _, err := svc.UpdateUserPrivileges(user.ID, []string{"nope:nothing"}, testActor); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown code: got %v", err)
	}
	if _, err := svc.UpdateUserPrivileges(uuid.New(), nil, testActor); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	svc, roles := newUserFixture(t)
	seller, _ := roles.FindByCode(model.RoleSeller)
	user, _ := svc.CreateUser(&CreateUserRequest{
		UserProfile: UserProfile{Email: "borrar@example.com", FullName: "Borrar", RoleID: seller.ID},
		Password: "secreto",
	}, testActor)

	self := Actor{ID: user.ID.String()}
	if err := svc.DeleteUser(user.ID, self); !errors.Is(err, ErrValidation) {
		t.Errorf("self delete: got %v", err)
	}
	if err := svc.DeleteUser(user.ID, testActor); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetUserByID(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("deleted user lookup: got %v", err)
	}
}

func TestDeletedUserKeepsEmail(t *testing.T) {
	svc, roles := newUserFixture(t)
	seller, _ := roles.FindByCode(model.RoleSeller)
	req := func() *CreateUserRequest {
		return &CreateUserRequest{
			UserProfile: UserProfile{Email: "rosa@example.com", FullName: "Rosa", RoleID: seller.ID},
			Password:    "secreto",
		}
	}

	user, err := svc.CreateUser(req(), testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteUser(user.ID, testActor); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.CreateUser(req(), testActor); !errors.Is(err, ErrEmailExists) {
		t.Errorf("reusing a deleted user's email: got %v", err)
	}
}

func TestDeactivationRevokesSession(t *testing.T) {
	f := newAuthFixture(t, 0)
	roles := repository.NewRoleRepo(f.db)
	svc := NewUserService(f.users, repository.NewPrivilegeRepo(f.db), roles)
	seller, _ := roles.FindByCode(model.RoleSeller)

	user, err := svc.CreateUser(&CreateUserRequest{
		UserProfile: UserProfile{Email: "caja@example.com", FullName: "Caja", RoleID: seller.ID},
		Password:    "secreto",
	}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	session, err := f.auth.Login("caja@example.com", "secreto")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	off := false
	_, err = svc.UpdateUser(user.ID, &UpdateUserRequest{
		UserProfile: UserProfile{Email: "caja@example.com", FullName: "Caja", RoleID: seller.ID},
		IsActive:    &off,
	}, testActor)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := f.auth.Authenticate(session.Token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected the session to be refused, got %v", err)
	}
}
