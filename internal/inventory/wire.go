//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	http "github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/delivery/http"
)

// InitializeProductHandler initializes the product HTTP handler with all dependencies
func InitializeProductHandler(db *gorm.DB) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewProductHandler,
	)
	return nil, nil
}

// InitializeCategoryHandler initializes the category HTTP handler with all dependencies
func InitializeCategoryHandler(db *gorm.DB) (*http.CategoryHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewCategoryHandler,
	)
	return nil, nil
}
