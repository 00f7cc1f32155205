package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventory "github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/kafka"
)

type stubHistoryRepository struct {
	createErr error
	created   *domain.StockOutHistory
	gotLines  []domain.LineRequest
}

func (s *stubHistoryRepository) Create(lines []domain.LineRequest) (*domain.StockOutHistory, error) {
	s.gotLines = lines
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubHistoryRepository) FindAll() ([]domain.StockOutHistory, error) {
	return nil, nil
}

func (s *stubHistoryRepository) FindByDateRange(start, end time.Time) ([]domain.StockOutHistory, error) {
	return nil, nil
}

type recordingPublisher struct {
	err    error
	events []kafka.StockOutRecordedEvent
}

func (p *recordingPublisher) PublishStockOutRecorded(ctx context.Context, event kafka.StockOutRecordedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func sampleHistory() *domain.StockOutHistory {
	return &domain.StockOutHistory{
		ID:   7,
		Date: time.Now(),
		Items: []domain.StockOutItem{
			{ProductID: 1, ProductName: "Kuzu Pirzola", ProductBrand: "Yerli", Category: "Et Ürünleri", Quantity: 3, Price: 450, Cost: 1350},
			{ProductID: 2, ProductName: "Nohut", ProductBrand: "Yayla", Category: "Bakliyat", Quantity: 2, Price: 60, Cost: 120},
		},
		TotalCost: 1470,
	}
}

func TestProcessStockOut_RejectsEmptyBatch(t *testing.T) {
	repo := &stubHistoryRepository{}
	handler := NewProcessStockOutHandler(repo, nil)

	_, err := handler.Handle(context.Background(), ProcessStockOutCommand{})
	assert.ErrorIs(t, err, domain.ErrEmptyRequest)
	assert.Nil(t, repo.gotLines)
}

func TestProcessStockOut_RejectsNonPositiveQuantity(t *testing.T) {
	repo := &stubHistoryRepository{}
	handler := NewProcessStockOutHandler(repo, nil)

	for _, quantity := range []int{0, -1} {
		_, err := handler.Handle(context.Background(), ProcessStockOutCommand{
			Items: []domain.LineRequest{
				{ProductID: 1, Quantity: 2},
				{ProductID: 2, Quantity: quantity},
			},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	assert.Nil(t, repo.gotLines, "repository must not be called for invalid batches")
}

func TestProcessStockOut_RecordsBatch(t *testing.T) {
	repo := &stubHistoryRepository{created: sampleHistory()}
	handler := NewProcessStockOutHandler(repo, nil)

	lines := []domain.LineRequest{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 2},
	}
	history, err := handler.Handle(context.Background(), ProcessStockOutCommand{Items: lines})
	require.NoError(t, err)

	assert.Equal(t, lines, repo.gotLines)
	assert.Equal(t, uint(7), history.ID)
	assert.Len(t, history.Items, 2)
	assert.InDelta(t, 1470, history.TotalCost, 0.001)
}

func TestProcessStockOut_PropagatesRepositoryErrors(t *testing.T) {
	t.Run("insufficient stock", func(t *testing.T) {
		repo := &stubHistoryRepository{createErr: &inventory.InsufficientStockError{
			ProductID:   1,
			ProductName: "Nohut",
			Available:   1,
			Requested:   5,
		}}
		handler := NewProcessStockOutHandler(repo, nil)

		_, err := handler.Handle(context.Background(), ProcessStockOutCommand{
			Items: []domain.LineRequest{{ProductID: 1, Quantity: 5}},
		})
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)

		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Nohut", stockErr.ProductName)
		assert.Equal(t, 1, stockErr.Available)
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := &stubHistoryRepository{createErr: &domain.ProductNotFoundError{ProductID: 99}}
		handler := NewProcessStockOutHandler(repo, nil)

		_, err := handler.Handle(context.Background(), ProcessStockOutCommand{
			Items: []domain.LineRequest{{ProductID: 99, Quantity: 1}},
		})
		assert.ErrorIs(t, err, inventory.ErrProductNotFound)
	})
}

func TestProcessStockOut_PublishesEvent(t *testing.T) {
	repo := &stubHistoryRepository{created: sampleHistory()}
	publisher := &recordingPublisher{}
	handler := NewProcessStockOutHandler(repo, publisher)

	_, err := handler.Handle(context.Background(), ProcessStockOutCommand{
		Items: []domain.LineRequest{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, uint(7), event.HistoryID)
	assert.Equal(t, 2, event.ItemCount)
	assert.InDelta(t, 1470, event.TotalCost, 0.001)
}

func TestProcessStockOut_PublishFailureIsNotFatal(t *testing.T) {
	repo := &stubHistoryRepository{created: sampleHistory()}
	publisher := &recordingPublisher{err: errors.New("broker unreachable")}
	handler := NewProcessStockOutHandler(repo, publisher)

	history, err := handler.Handle(context.Background(), ProcessStockOutCommand{
		Items: []domain.LineRequest{{ProductID: 1, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.NotNil(t, history)
}

func TestProcessStockOut_RepositoryFailure(t *testing.T) {
	repo := &stubHistoryRepository{createErr: errors.New("connection refused")}
	handler := NewProcessStockOutHandler(repo, nil)

	_, err := handler.Handle(context.Background(), ProcessStockOutCommand{
		Items: []domain.LineRequest{{ProductID: 1, Quantity: 1}},
	})
	assert.Error(t, err)
}
