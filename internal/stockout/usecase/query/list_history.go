package query

import (
	"fmt"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
)

// ListHistoryQuery represents the query for all history records
type ListHistoryQuery struct{}

// ListHistoryHandler handles list history query
type ListHistoryHandler struct {
	repo domain.HistoryRepository
}

// NewListHistoryHandler creates a new list history handler
func NewListHistoryHandler(repo domain.HistoryRepository) *ListHistoryHandler {
	return &ListHistoryHandler{repo: repo}
}

// Handle returns all stock-out records, most recent first
func (h *ListHistoryHandler) Handle(ListHistoryQuery) ([]domain.StockOutHistory, error) {
	histories, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return histories, nil
}
