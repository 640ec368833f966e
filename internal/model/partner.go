package model

// Supplier provides goods recorded through purchases.
type Supplier struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	ContactName string `gorm:"type:varchar(255)" json:"contact_name"`
	Email       string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone       string `gorm:"type:varchar(30)" json:"phone" validate:"max=30"`
	Address     string `gorm:"type:text" json:"address"`
	Note        string `gorm:"type:text" json:"note"`
}

// Client buys goods recorded through sales.
type Client struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	TaxID   string `gorm:"type:varchar(30)" json:"tax_id" validate:"max=30"` // NIF/CIF
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone   string `gorm:"type:varchar(30)" json:"phone" validate:"max=30"`
	Address string `gorm:"type:text" json:"address"`
}
