package command

import (
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
)

// DeductStockCommand represents a single-product stock-out
type DeductStockCommand struct {
	ProductID uint
	Quantity  int
}

// DeductStockResult carries the updated product and the cost of the
// removed quantity at the price in effect at decrement time
type DeductStockResult struct {
	Product *domain.Product
	Cost    float64
}

// DeductStockHandler handles stock deduction command
type DeductStockHandler struct {
	repo domain.ProductRepository
}

// NewDeductStockHandler creates a new deduct stock handler
func NewDeductStockHandler(repo domain.ProductRepository) *DeductStockHandler {
	return &DeductStockHandler{repo: repo}
}

// Handle executes the deduct stock command
func (h *DeductStockHandler) Handle(cmd DeductStockCommand) (*DeductStockResult, error) {
	if cmd.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := h.repo.DecrementStock(cmd.ProductID, cmd.Quantity)
	if err != nil {
		return nil, err
	}

	return &DeductStockResult{
		Product: product,
		Cost:    float64(cmd.Quantity) * product.Price,
	}, nil
}
