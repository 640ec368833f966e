package repository

import (
	"time"

	"go-inventario/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindAll() ([]model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	// EmailTaken counts soft-deleted users too, since they keep the unique index.
	EmailTaken(email string, except uuid.UUID) (bool, error)
	Update(user *model.User) error
	Delete(id uuid.UUID, deletedBy string) error

	UpdatePassword(id uuid.UUID, hash string) error
	UpdatePrivileges(id uuid.UUID, privileges []model.Privilege) error
	UpdateTokenVersion(id uuid.UUID, version string) error
	UpdateLastSeen(id uuid.UUID, at time.Time) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) loaded() *gorm.DB {
	return r.db.Preload("Role").Preload("Privileges", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

func (r *userRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.loaded().Order("full_name ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	return r.first("id = ?", id)
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	return r.first("email = ?", email)
}

func (r *userRepo) first(query string, arg interface{}) (*model.User, error) {
	var user model.User
	if err := r.loaded().Where(query, arg).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) EmailTaken(email string, except uuid.UUID) (bool, error) {
	var n int64
	err := r.db.Unscoped().Model(&model.User{}).
		Where("email = ? AND id <> ?", email, except).
		Count(&n).Error
	return n > 0, err
}

// Update saves scalar columns; privileges change through UpdatePrivileges.
func (r *userRepo) Update(user *model.User) error {
	return r.db.Omit("Privileges", "Role").Save(user).Error
}

func (r *userRepo) Delete(id uuid.UUID, deletedBy string) error {
	return softDelete(r.db, &model.User{}, id, deletedBy)
}

func (r *userRepo) UpdatePassword(id uuid.UUID, hash string) error {
	return r.column(id, "password", hash)
}

func (r *userRepo) UpdateTokenVersion(id uuid.UUID, version string) error {
	return r.column(id, "token_version", version)
}

func (r *userRepo) UpdateLastSeen(id uuid.UUID, at time.Time) error {
	return r.column(id, "last_seen_at", at)
}

func (r *userRepo) column(id uuid.UUID, name string, value interface{}) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update(name, value).Error
}

func (r *userRepo) UpdatePrivileges(id uuid.UUID, privileges []model.Privilege) error {
	user := model.User{BaseModel: model.BaseModel{ID: id}}
	return r.db.Model(&user).Association("Privileges").Replace(privileges)
}
