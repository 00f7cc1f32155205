package domain

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Product represents a stock item of the food-goods inventory.
// Price is the price for one kilogram. Category is stored as a plain
// name, not a foreign key; deleting a category does not touch products.
type Product struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"not null" validate:"required"`
	Brand      string         `json:"brand" gorm:"not null" validate:"required"`
	Quantity   int            `json:"quantity" gorm:"not null;default:0" validate:"gte=0"`
	Price      float64        `json:"price" gorm:"not null" validate:"required,gt=0"`
	Category   string         `json:"category" gorm:"not null;index" validate:"required"`
	EntryDate  time.Time      `json:"entry_date"`
	ExpiryDate *time.Time     `json:"expiry_date,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsAvailable checks if at least the requested quantity is in stock
func (p *Product) IsAvailable(quantity int) bool {
	return quantity > 0 && p.Quantity >= quantity
}

var (
	// ErrProductNotFound is returned when the referenced product does not exist
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a decrement exceeds the available quantity
	ErrInsufficientStock = errors.New("not enough stock available")

	// ErrInvalidQuantity is returned for zero or negative quantities
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidInput is returned when a payload fails schema validation
	ErrInvalidInput = errors.New("invalid request")
)

// InsufficientStockError carries the offending product and what was available
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	FindByCategory(category string, limit, offset int) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)

	// DecrementStock atomically subtracts quantity from the product's stock.
	// The decrement only applies when the remaining stock stays >= 0;
	// otherwise ErrProductNotFound or an InsufficientStockError is returned.
	DecrementStock(id uint, quantity int) (*Product, error)
}
