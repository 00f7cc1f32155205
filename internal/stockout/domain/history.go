package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// StockOutItem is one line of a stock-out transaction. Product name,
// brand, category and price are snapshot copies taken at decrement time,
// so later product edits or deletes never alter past history.
type StockOutItem struct {
	ID           uint    `json:"-" gorm:"primaryKey"`
	HistoryID    uint    `json:"-" gorm:"not null;index"`
	ProductID    uint    `json:"product_id" gorm:"not null"`
	ProductName  string  `json:"product_name" gorm:"not null"`
	ProductBrand string  `json:"product_brand" gorm:"not null"`
	Category     string  `json:"category" gorm:"not null"`
	Quantity     int     `json:"quantity" gorm:"not null"`
	Price        float64 `json:"price" gorm:"not null"`
	Cost         float64 `json:"cost" gorm:"not null"`
}

// TableName specifies the table name
func (StockOutItem) TableName() string {
	return "stock_out_items"
}

// StockOutHistory is the immutable record of one completed stock-out
// transaction. TotalCost is fixed at creation as the sum of item costs.
type StockOutHistory struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Date      time.Time      `json:"date" gorm:"not null;index"`
	Items     []StockOutItem `json:"items" gorm:"foreignKey:HistoryID"`
	TotalCost float64        `json:"total_cost" gorm:"not null"`
}

// TableName specifies the table name
func (StockOutHistory) TableName() string {
	return "stock_out_histories"
}

// LineRequest names a product and the quantity to remove from stock
type LineRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// UnmarshalJSON accepts the product id under either spelling. The
// original web client sends camelCase productId; the service responds
// in snake_case.
func (l *LineRequest) UnmarshalJSON(data []byte) error {
	var aux struct {
		ProductID      uint `json:"product_id"`
		ProductIDCamel uint `json:"productId"`
		Quantity       int  `json:"quantity"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	l.ProductID = aux.ProductID
	if l.ProductID == 0 {
		l.ProductID = aux.ProductIDCamel
	}
	l.Quantity = aux.Quantity
	return nil
}

var (
	// ErrEmptyRequest is returned when a stock-out batch has no line items
	ErrEmptyRequest = errors.New("items are required")

	// ErrInvalidQuantity is returned when a line requests zero or less
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidDateRange is returned when a date bound is missing or unparseable
	ErrInvalidDateRange = errors.New("start date and end date are required")
)

// HistoryRepository defines the contract for stock-out history access.
//
// Create executes the whole batch as a single transaction: every line is
// validated and decremented conditionally, the history record with its
// item snapshots is inserted, and any failure rolls everything back.
type HistoryRepository interface {
	Create(lines []LineRequest) (*StockOutHistory, error)
	FindAll() ([]StockOutHistory, error)
	FindByDateRange(start, end time.Time) ([]StockOutHistory, error)
}
