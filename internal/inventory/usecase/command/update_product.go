package command

import (
	"fmt"
	"time"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/validator"
)

// UpdateProductCommand represents the command to correct a product record
type UpdateProductCommand struct {
	ID         uint
	Name       string
	Brand      string
	Quantity   int
	Price      float64
	Category   string
	EntryDate  *time.Time
	ExpiryDate *time.Time
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	product.Name = cmd.Name
	product.Brand = cmd.Brand
	product.Quantity = cmd.Quantity
	product.Price = cmd.Price
	product.Category = cmd.Category
	if cmd.EntryDate != nil {
		product.EntryDate = *cmd.EntryDate
	}
	product.ExpiryDate = cmd.ExpiryDate

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on '%s'",
			domain.ErrInvalidInput, first.FailedField, first.Tag)
	}

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
