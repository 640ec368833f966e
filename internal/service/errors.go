package service

import (
	"errors"
	"fmt"

	"go-inventario/pkg/validator"

	"gorm.io/gorm"
)

// Base errors. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
)

var (
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrSupplierNotFound = fmt.Errorf("supplier %w", ErrNotFound)
	ErrClientNotFound   = fmt.Errorf("client %w", ErrNotFound)
	ErrPurchaseNotFound = fmt.Errorf("purchase %w", ErrNotFound)
	ErrSaleNotFound     = fmt.Errorf("sale %w", ErrNotFound)
	ErrSettingNotFound  = fmt.Errorf("setting %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrRoleNotFound     = fmt.Errorf("role %w", ErrNotFound)

	ErrSKUExists   = fmt.Errorf("SKU %w", ErrConflict)
	ErrEmailExists = fmt.Errorf("email %w", ErrConflict)

	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock remaining", ErrValidation)
	ErrUnknownSetting    = fmt.Errorf("%w: unknown setting", ErrValidation)
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported export format", ErrValidation)
)

// validate runs struct validation and reports the first failure as ErrValidation.
func validate(data interface{}) error {
	if first := validator.First(data); first != nil {
		return fmt.Errorf("%w: %s", ErrValidation, first.Error())
	}
	return nil
}

// notFound translates gorm.ErrRecordNotFound into the domain error.
func notFound(err, domain error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain
	}
	return err
}
