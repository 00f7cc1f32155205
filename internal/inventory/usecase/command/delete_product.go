package command

import (
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
)

// DeleteProductCommand represents the command to remove a product record
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	return h.repo.Delete(cmd.ID)
}
