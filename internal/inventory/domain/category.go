package domain

import (
	"errors"
	"time"
)

// Category groups products by name. Products and history line items
// reference categories by name only.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// DefaultCategories is the baseline category set seeded at startup.
var DefaultCategories = []string{
	"Et Ürünleri",
	"Bakliyat",
	"Baharat",
	"Sebze-Meyve",
	"Donuk Ürünler",
	"Tatlılar",
	"Diğer",
}

var (
	// ErrCategoryNotFound is returned when the referenced category does not exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryExists is returned when creating a category whose name is taken
	ErrCategoryExists = errors.New("category already exists")
)

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(category *Category) error
	FindByID(id uint) (*Category, error)
	FindByName(name string) (*Category, error)
	FindAll() ([]Category, error)
	Delete(id uint) error

	// SeedDefaults ensures the baseline categories exist. Idempotent.
	SeedDefaults() error
}
