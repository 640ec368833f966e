package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go-inventario/internal/model"
	"go-inventario/internal/repository"

	"gorm.io/gorm"
)

// AccessSeeder creates the built-in privileges, roles and master admin.
type AccessSeeder struct {
	Users      repository.UserRepository
	Roles      repository.RoleRepository
	Privileges repository.PrivilegeRepository
	Log        *slog.Logger
}

// Seed is idempotent. A role that already carries privileges keeps them, so
// edits made by an administrator survive restarts.
func (s AccessSeeder) Seed(adminEmail, adminPassword string) error {
	log := s.Log
	if log == nil {
		log = slog.Default()
	}

	if err := s.Privileges.EnsureDefaults(); err != nil {
		return fmt.Errorf("seed privileges: %w", err)
	}
	all, err := s.Privileges.FindAll()
	if err != nil {
		return err
	}

	var master *model.Role
	for _, def := range model.DefaultRoles {
		role, err := s.Roles.Ensure(def)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", def.Code, err)
		}
		if len(role.Privileges) == 0 {
			granted := def.Select(all)
			if err := s.Roles.SetPrivileges(role, granted); err != nil {
				return fmt.Errorf("grant %s: %w", def.Code, err)
			}
			log.Info("role privileges granted", "role", def.Code, "count", len(granted))
		}
		if def.Code == model.RoleMasterAdmin {
			master = role
		}
	}

	return s.ensureAdmin(strings.ToLower(strings.TrimSpace(adminEmail)), adminPassword, master, log)
}

func (s AccessSeeder) ensureAdmin(email, password string, master *model.Role, log *slog.Logger) error {
	_, err := s.Users.FindByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := &model.User{
		Email:      email,
		FullName:   "Administrador",
		RoleID:     &master.ID,
		IsActive:   true,
		Privileges: master.Privileges,
	}
	admin.Stamp(SystemActor.ID)
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := s.Users.Create(admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	log.Info("admin user created", "email", email)
	return nil
}
