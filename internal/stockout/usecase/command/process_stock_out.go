package command

import (
	"context"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/kafka"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/logger"
)

// ProcessStockOutCommand represents a multi-line stock-out request
type ProcessStockOutCommand struct {
	Items []domain.LineRequest
}

// EventPublisher publishes stock-out events after a committed transaction
type EventPublisher interface {
	PublishStockOutRecorded(ctx context.Context, event kafka.StockOutRecordedEvent) error
}

// ProcessStockOutHandler executes a stock-out batch as one unit: every
// line is validated and decremented inside a single database transaction,
// and a history record with snapshot line items is written. Either the
// whole batch commits or none of it does.
type ProcessStockOutHandler struct {
	repo      domain.HistoryRepository
	publisher EventPublisher
}

// NewProcessStockOutHandler creates a new stock-out processor
func NewProcessStockOutHandler(repo domain.HistoryRepository, publisher EventPublisher) *ProcessStockOutHandler {
	return &ProcessStockOutHandler{repo: repo, publisher: publisher}
}

// Handle executes the stock-out command
func (h *ProcessStockOutHandler) Handle(ctx context.Context, cmd ProcessStockOutCommand) (*domain.StockOutHistory, error) {
	if len(cmd.Items) == 0 {
		return nil, domain.ErrEmptyRequest
	}
	for _, line := range cmd.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	history, err := h.repo.Create(cmd.Items)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("history_id", history.ID).
		Int("items", len(history.Items)).
		Float64("total_cost", history.TotalCost).
		Msg("Stock-out transaction recorded")

	// Publishing is best effort; the transaction is already committed
	if h.publisher != nil {
		event := kafka.StockOutRecordedEvent{
			HistoryID: history.ID,
			ItemCount: len(history.Items),
			TotalCost: history.TotalCost,
		}
		if err := h.publisher.PublishStockOutRecorded(ctx, event); err != nil {
			logger.Warn(ctx).
				Err(err).
				Uint("history_id", history.ID).
				Msg("Failed to publish stock-out event")
		}
	}

	return history, nil
}
