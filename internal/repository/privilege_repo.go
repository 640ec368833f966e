package repository

import (
	"go-inventario/internal/model"

	"gorm.io/gorm"
)

type PrivilegeRepository interface {
	FindAll() ([]model.Privilege, error)
	FindByCodes(codes []string) ([]model.Privilege, error)
	// EnsureDefaults inserts every built-in privilege that is missing.
	EnsureDefaults() error
}

type privilegeRepo struct {
	db *gorm.DB
}

func NewPrivilegeRepo(db *gorm.DB) PrivilegeRepository {
	return &privilegeRepo{db: db}
}

func (r *privilegeRepo) FindAll() ([]model.Privilege, error) {
	var privs []model.Privilege
	err := r.db.Order("id ASC").Find(&privs).Error
	return privs, err
}

func (r *privilegeRepo) FindByCodes(codes []string) ([]model.Privilege, error) {
	privs := []model.Privilege{}
	if len(codes) == 0 {
		return privs, nil
	}
	err := r.db.Where("code IN ?", codes).Order("id ASC").Find(&privs).Error
	return privs, err
}

func (r *privilegeRepo) EnsureDefaults() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range model.DefaultPrivileges {
			p := def
			if err := tx.Where(model.Privilege{Code: p.Code}).FirstOrCreate(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
