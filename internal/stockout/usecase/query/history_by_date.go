package query

import (
	"fmt"
	"time"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
)

// DateLayout is the wire format for calendar days
const DateLayout = "2006-01-02"

// HistoryByDateQuery selects one calendar day
type HistoryByDateQuery struct {
	Date string
}

// HistoryByDateHandler handles the by-date query
type HistoryByDateHandler struct {
	repo domain.HistoryRepository
}

// NewHistoryByDateHandler creates a new by-date handler
func NewHistoryByDateHandler(repo domain.HistoryRepository) *HistoryByDateHandler {
	return &HistoryByDateHandler{repo: repo}
}

// Handle returns the records created on the given calendar day,
// server-local time
func (h *HistoryByDateHandler) Handle(query HistoryByDateQuery) ([]domain.StockOutHistory, error) {
	day, err := time.ParseInLocation(DateLayout, query.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrInvalidDateRange, query.Date)
	}

	start, end := dayBounds(day)
	histories, err := h.repo.FindByDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	return histories, nil
}

// dayBounds returns [00:00:00.000, 23:59:59.999] of the day containing t
func dayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}
