package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/repository"
)

// ProvideProductRepository provides the product repository with tracing
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewTracingProductRepository(db)
}

// ProvideCategoryRepository provides the category repository
func ProvideCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return repository.NewGormCategoryRepository(db)
}

// RepositorySet groups the inventory repository providers
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideCategoryRepository,
)
