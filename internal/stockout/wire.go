//go:build wireinject
// +build wireinject

package stockout

import (
	"database/sql"

	"github.com/google/wire"

	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/delivery/http"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/usecase/command"
)

// InitializeHistoryHandler creates the stock-out history HTTP handler with all dependencies
func InitializeHistoryHandler(db *sql.DB, publisher command.EventPublisher) (*http.HistoryHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewHistoryHandler,
	)
	return nil, nil
}
