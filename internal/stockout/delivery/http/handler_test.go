package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventory "github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
)

type fakeHistoryRepository struct {
	createErr error
	created   *domain.StockOutHistory
	histories []domain.StockOutHistory
	gotLines  []domain.LineRequest
	gotStart  time.Time
	gotEnd    time.Time
}

func (f *fakeHistoryRepository) Create(lines []domain.LineRequest) (*domain.StockOutHistory, error) {
	f.gotLines = lines
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeHistoryRepository) FindAll() ([]domain.StockOutHistory, error) {
	return f.histories, nil
}

func (f *fakeHistoryRepository) FindByDateRange(start, end time.Time) ([]domain.StockOutHistory, error) {
	f.gotStart = start
	f.gotEnd = end
	return f.histories, nil
}

func newTestRouter(repo domain.HistoryRepository) *mux.Router {
	router := mux.NewRouter()
	NewHistoryHandler(repo, nil).RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *mux.Router, method, target string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestCreateStockOut_Success(t *testing.T) {
	repo := &fakeHistoryRepository{
		created: &domain.StockOutHistory{
			ID:   3,
			Date: time.Now(),
			Items: []domain.StockOutItem{
				{ProductID: 1, ProductName: "Mercimek", ProductBrand: "Yayla", Category: "Bakliyat", Quantity: 4, Price: 55, Cost: 220},
			},
			TotalCost: 220,
		},
	}
	router := newTestRouter(repo)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/stock-out-history", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 4},
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Stock-out recorded successfully", resp.Message)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, data["id"])
	assert.EqualValues(t, 220, data["total_cost"])
}

func TestCreateStockOut_CamelCaseProductID(t *testing.T) {
	repo := &fakeHistoryRepository{
		created: &domain.StockOutHistory{ID: 1, Date: time.Now(), TotalCost: 55},
	}
	router := newTestRouter(repo)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/stock-out-history", map[string]interface{}{
		"items": []map[string]interface{}{
			{"productId": 8, "quantity": 1},
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	require.Len(t, repo.gotLines, 1)
	assert.Equal(t, uint(8), repo.gotLines[0].ProductID)
	assert.Equal(t, 1, repo.gotLines[0].Quantity)
}

func TestCreateStockOut_InvalidBody(t *testing.T) {
	router := newTestRouter(&fakeHistoryRepository{})

	req := httptest.NewRequest(http.MethodPost, "/api/stock-out-history", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateStockOut_EmptyBatch(t *testing.T) {
	router := newTestRouter(&fakeHistoryRepository{})

	rec, resp := doRequest(t, router, http.MethodPost, "/api/stock-out-history", map[string]interface{}{
		"items": []map[string]interface{}{},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "items are required", resp.Error)
}

func TestCreateStockOut_InsufficientStock(t *testing.T) {
	repo := &fakeHistoryRepository{createErr: &inventory.InsufficientStockError{
		ProductID:   2,
		ProductName: "Karabiber",
		Available:   1,
		Requested:   10,
	}}
	router := newTestRouter(repo)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/stock-out-history", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": 2, "quantity": 10},
		},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "Karabiber")
}

func TestCreateStockOut_UnknownProduct(t *testing.T) {
	repo := &fakeHistoryRepository{createErr: &domain.ProductNotFoundError{ProductID: 99}}
	router := newTestRouter(repo)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/stock-out-history", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": 99, "quantity": 1},
		},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, resp.Error, "99")
}

func TestListHistory(t *testing.T) {
	repo := &fakeHistoryRepository{
		histories: []domain.StockOutHistory{
			{ID: 2, TotalCost: 50},
			{ID: 1, TotalCost: 30},
		},
	}
	router := newTestRouter(repo)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/stock-out-history", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestHistoryByDate(t *testing.T) {
	repo := &fakeHistoryRepository{histories: []domain.StockOutHistory{{ID: 1}}}
	router := newTestRouter(repo)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/stock-out-history/date/2025-05-20", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, 20, repo.gotStart.Day())
	assert.Equal(t, 20, repo.gotEnd.Day())
}

func TestHistoryByDate_InvalidDate(t *testing.T) {
	router := newTestRouter(&fakeHistoryRepository{})

	rec, resp := doRequest(t, router, http.MethodGet, "/api/stock-out-history/date/20.05.2025", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestHistoryByRange(t *testing.T) {
	repo := &fakeHistoryRepository{histories: []domain.StockOutHistory{{ID: 1}, {ID: 2}}}
	router := newTestRouter(repo)

	rec, resp := doRequest(t, router,
		http.MethodGet, "/api/stock-out-history/range?startDate=2025-05-01&endDate=2025-05-31", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, repo.gotStart.Day())
	assert.Equal(t, 31, repo.gotEnd.Day())
}

func TestHistoryByRange_MissingBounds(t *testing.T) {
	router := newTestRouter(&fakeHistoryRepository{})

	rec, resp := doRequest(t, router, http.MethodGet, "/api/stock-out-history/range?startDate=2025-05-01", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "start date and end date are required", resp.Error)
}
