package repository

import (
	"go-inventario/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindAll() ([]model.Role, error)
	FindByID(id uint) (*model.Role, error)
	FindByCode(code string) (*model.Role, error)
	// Ensure returns the role with def's code, creating it when missing.
	Ensure(def model.RoleDefinition) (*model.Role, error)
	SetPrivileges(role *model.Role, privileges []model.Privilege) error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) preloaded() *gorm.DB {
	return r.db.Preload("Privileges", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

func (r *roleRepo) FindAll() ([]model.Role, error) {
	var roles []model.Role
	err := r.preloaded().Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindByID(id uint) (*model.Role, error) {
	return r.first("id = ?", id)
}

func (r *roleRepo) FindByCode(code string) (*model.Role, error) {
	return r.first("code = ?", code)
}

func (r *roleRepo) first(query string, arg interface{}) (*model.Role, error) {
	var role model.Role
	if err := r.preloaded().Where(query, arg).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) Ensure(def model.RoleDefinition) (*model.Role, error) {
	role := def.Role()
	if err := r.db.Where(model.Role{Code: def.Code}).FirstOrCreate(&role).Error; err != nil {
		return nil, err
	}
	return r.FindByID(role.ID)
}

func (r *roleRepo) SetPrivileges(role *model.Role, privileges []model.Privilege) error {
	if err := r.db.Model(role).Association("Privileges").Replace(privileges); err != nil {
		return err
	}
	role.Privileges = privileges
	return nil
}
