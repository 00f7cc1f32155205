package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	inventory "github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/usecase/command"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/usecase/query"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/logger"
)

// HistoryHandler handles HTTP requests for stock-out transactions and
// their history
type HistoryHandler struct {
	processHandler *command.ProcessStockOutHandler
	listHandler    *query.ListHistoryHandler
	byDateHandler  *query.HistoryByDateHandler
	byRangeHandler *query.HistoryByRangeHandler
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(repo domain.HistoryRepository, publisher command.EventPublisher) *HistoryHandler {
	return &HistoryHandler{
		processHandler: command.NewProcessStockOutHandler(repo, publisher),
		listHandler:    query.NewListHistoryHandler(repo),
		byDateHandler:  query.NewHistoryByDateHandler(repo),
		byRangeHandler: query.NewHistoryByRangeHandler(repo),
	}
}

// Response is the JSON envelope shared by all endpoints
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all stock-out history routes
func (h *HistoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/stock-out-history", h.CreateStockOut).Methods("POST")
	router.HandleFunc("/api/stock-out-history", h.ListHistory).Methods("GET")
	router.HandleFunc("/api/stock-out-history/date/{date}", h.HistoryByDate).Methods("GET")
	router.HandleFunc("/api/stock-out-history/range", h.HistoryByRange).Methods("GET")
}

// CreateStockOut handles POST /api/stock-out-history
func (h *HistoryHandler) CreateStockOut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []domain.LineRequest `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	history, err := h.processHandler.Handle(r.Context(), command.ProcessStockOutCommand{
		Items: req.Items,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Int("items", len(req.Items)).Msg("Stock-out rejected")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock-out recorded successfully",
		Data:    history,
	})
}

// ListHistory handles GET /api/stock-out-history
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	histories, err := h.listHandler.Handle(query.ListHistoryQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list history")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list history",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    histories,
	})
}

// HistoryByDate handles GET /api/stock-out-history/date/{date}
func (h *HistoryHandler) HistoryByDate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	histories, err := h.byDateHandler.Handle(query.HistoryByDateQuery{Date: vars["date"]})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    histories,
	})
}

// HistoryByRange handles GET /api/stock-out-history/range
func (h *HistoryHandler) HistoryByRange(w http.ResponseWriter, r *http.Request) {
	histories, err := h.byRangeHandler.Handle(query.HistoryByRangeQuery{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    histories,
	})
}

// respondError maps domain errors to HTTP status codes
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Server error"

	switch {
	case errors.Is(err, inventory.ErrProductNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, domain.ErrEmptyRequest),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidDateRange):
		status = http.StatusBadRequest
		message = err.Error()
	}

	respondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
