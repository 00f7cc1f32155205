package query

import (
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
)

// GetProductQuery represents the query to fetch one product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(query GetProductQuery) (*domain.Product, error) {
	return h.repo.FindByID(query.ID)
}
