package query

import (
	"fmt"
	"time"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
)

// HistoryByRangeQuery selects an inclusive calendar-day range
type HistoryByRangeQuery struct {
	StartDate string
	EndDate   string
}

// HistoryByRangeHandler handles the date-range query
type HistoryByRangeHandler struct {
	repo domain.HistoryRepository
}

// NewHistoryByRangeHandler creates a new date-range handler
func NewHistoryByRangeHandler(repo domain.HistoryRepository) *HistoryByRangeHandler {
	return &HistoryByRangeHandler{repo: repo}
}

// Handle returns the records between the start of the first day and the
// end of the last day, inclusive. Both bounds are required.
func (h *HistoryByRangeHandler) Handle(query HistoryByRangeQuery) ([]domain.StockOutHistory, error) {
	if query.StartDate == "" || query.EndDate == "" {
		return nil, domain.ErrInvalidDateRange
	}

	startDay, err := time.ParseInLocation(DateLayout, query.StartDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", domain.ErrInvalidDateRange, query.StartDate)
	}
	endDay, err := time.ParseInLocation(DateLayout, query.EndDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %q", domain.ErrInvalidDateRange, query.EndDate)
	}

	start, _ := dayBounds(startDay)
	_, end := dayBounds(endDay)

	histories, err := h.repo.FindByDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	return histories, nil
}
