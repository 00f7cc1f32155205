package query

import (
	"fmt"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
)

// ListProductsQuery represents the query to list products, newest first
type ListProductsQuery struct {
	Limit    int
	Offset   int
	Category string // Optional: filter by category name
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}

	var (
		products []domain.Product
		err      error
	)
	if query.Category != "" {
		products, err = h.repo.FindByCategory(query.Category, query.Limit, query.Offset)
	} else {
		products, err = h.repo.FindAll(query.Limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
