package stockout

import (
	"database/sql"

	"github.com/google/wire"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/repository"
)

// ProvideHistoryRepository provides the history repository with tracing
func ProvideHistoryRepository(db *sql.DB) domain.HistoryRepository {
	return repository.NewTracingHistoryRepository(db)
}

// RepositorySet groups the stock-out repository providers
var RepositorySet = wire.NewSet(
	ProvideHistoryRepository,
)
