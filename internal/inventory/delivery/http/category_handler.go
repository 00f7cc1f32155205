package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/usecase/command"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/usecase/query"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/logger"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	createHandler *command.CreateCategoryHandler
	deleteHandler *command.DeleteCategoryHandler
	listHandler   *query.ListCategoriesHandler
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(repo domain.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{
		createHandler: command.NewCreateCategoryHandler(repo),
		deleteHandler: command.NewDeleteCategoryHandler(repo),
		listHandler:   query.NewListCategoriesHandler(repo),
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/categories", h.ListCategories).Methods("GET")
	router.HandleFunc("/api/categories", h.CreateCategory).Methods("POST")
	router.HandleFunc("/api/categories/{id}", h.DeleteCategory).Methods("DELETE")
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listHandler.Handle(query.ListCategoriesQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list categories",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    categories,
	})
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	category, err := h.createHandler.Handle(command.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("name", req.Name).Msg("Failed to create category")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid category ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteCategoryCommand{ID: uint(id)}); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category removed",
	})
}
