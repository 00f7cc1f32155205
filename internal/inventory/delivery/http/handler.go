package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/usecase/command"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/usecase/query"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/logger"
)

var (
	metricsOnce sync.Once

	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stok_takip_requests_total",
			Help: "Total number of requests to the inventory service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stok_takip_request_duration_seconds",
			Help:    "Duration of inventory service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "stok_takip_request_duration_summary",
			Help: "Summary of request durations with client-side quantiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stok_takip_total_products",
			Help: "Total number of products in the inventory",
		},
	)
)

func registerMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestLatency)
		prometheus.MustRegister(requestSummary)
		prometheus.MustRegister(totalProducts)
	})
}

// ProductHandler handles HTTP requests for products using CQRS pattern
type ProductHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler
	deductHandler *command.DeductStockHandler

	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler

	repo domain.ProductRepository
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo domain.ProductRepository) *ProductHandler {
	registerMetrics()

	return &ProductHandler{
		createHandler:     command.NewCreateProductHandler(repo),
		updateHandler:     command.NewUpdateProductHandler(repo),
		deleteHandler:     command.NewDeleteProductHandler(repo),
		deductHandler:     command.NewDeductStockHandler(repo),
		getProductHandler: query.NewGetProductHandler(repo),
		listHandler:       query.NewListProductsHandler(repo),
		repo:              repo,
	}
}

// Response is the JSON envelope shared by all endpoints
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", metricsMiddleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/{id}", metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", metricsMiddleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/quantity", metricsMiddleware("/api/products/{id}/quantity", h.DeductStock)).Methods("PATCH")
}

// RegisterHealthCheck registers the health check endpoint
func (h *ProductHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Service is healthy",
		})
	}).Methods("GET")
}

type productRequest struct {
	Name       string     `json:"name"`
	Brand      string     `json:"brand"`
	Quantity   int        `json:"quantity"`
	Price      float64    `json:"price"`
	Category   string     `json:"category"`
	EntryDate  *time.Time `json:"entry_date,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	product, err := h.createHandler.Handle(command.CreateProductCommand{
		Name:       req.Name,
		Brand:      req.Brand,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Category:   req.Category,
		EntryDate:  req.EntryDate,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create product")
		respondError(w, err)
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	category := r.URL.Query().Get("category")

	products, err := h.listHandler.Handle(query.ListProductsQuery{
		Limit:    limit,
		Offset:   offset,
		Category: category,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    count,
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.getProductHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{
		ID:         id,
		Name:       req.Name,
		Brand:      req.Brand,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Category:   req.Category,
		EntryDate:  req.EntryDate,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update product")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		respondError(w, err)
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product removed",
	})
}

// deductStockResponse is the updated product plus the computed cost
type deductStockResponse struct {
	*domain.Product
	Cost float64 `json:"cost"`
}

// DeductStock handles PATCH /api/products/{id}/quantity
func (h *ProductHandler) DeductStock(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.deductHandler.Handle(command.DeductStockCommand{
		ProductID: id,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to deduct stock")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated successfully",
		Data: deductStockResponse{
			Product: result.Product,
			Cost:    result.Cost,
		},
	})
}

func (h *ProductHandler) updateProductsMetric() {
	if count, err := h.repo.Count(); err == nil {
		totalProducts.Set(float64(count))
	}
}

func productID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain errors to HTTP status codes
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Server error"

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrCategoryNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrCategoryExists):
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
