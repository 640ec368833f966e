package repository

import (
	"errors"

	"go-inventario/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	FindAll() ([]model.Setting, error)
	FindByKey(key string) (*model.Setting, error)
	Upsert(setting *model.Setting) error
	SeedDefaults(defaults []model.Setting) error
}

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db}
}

func (r *settingRepo) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

func (r *settingRepo) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.First(&setting, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepo) Upsert(setting *model.Setting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at", "updated_by"}),
	}).Create(setting).Error
}

// SeedDefaults inserts missing settings without touching stored ones.
func (r *settingRepo) SeedDefaults(defaults []model.Setting) error {
	for _, s := range defaults {
		var existing model.Setting
		err := r.db.First(&existing, "key = ?", s.Key).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			seed := s
			seed.UpdatedBy = "system"
			if err := r.db.Create(&seed).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
