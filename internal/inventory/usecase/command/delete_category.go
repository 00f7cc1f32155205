package command

import (
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
)

// DeleteCategoryCommand represents the command to remove a category.
// Products keep the category name they were written with; no cascade.
type DeleteCategoryCommand struct {
	ID uint
}

// DeleteCategoryHandler handles category deletion command
type DeleteCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(repo domain.CategoryRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo}
}

// Handle executes the delete category command
func (h *DeleteCategoryHandler) Handle(cmd DeleteCategoryCommand) error {
	return h.repo.Delete(cmd.ID)
}
