package command

import (
	"fmt"
	"time"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/validator"
)

// CreateProductCommand represents the command to register a stock entry
type CreateProductCommand struct {
	Name       string
	Brand      string
	Quantity   int
	Price      float64
	Category   string
	EntryDate  *time.Time
	ExpiryDate *time.Time
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		Name:       cmd.Name,
		Brand:      cmd.Brand,
		Quantity:   cmd.Quantity,
		Price:      cmd.Price,
		Category:   cmd.Category,
		EntryDate:  time.Now(),
		ExpiryDate: cmd.ExpiryDate,
	}
	if cmd.EntryDate != nil {
		product.EntryDate = *cmd.EntryDate
	}

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on '%s'",
			domain.ErrInvalidInput, first.FailedField, first.Tag)
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
