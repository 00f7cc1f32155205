package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	inventory "github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
)

// PostgresHistoryRepository implements HistoryRepository over database/sql
type PostgresHistoryRepository struct {
	db *sql.DB
}

// NewPostgresHistoryRepository creates a new PostgreSQL history repository
func NewPostgresHistoryRepository(db *sql.DB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

// Create runs the whole stock-out batch in one transaction. Each line is
// decremented with a conditional update that snapshots the product at
// decrement time; a zero-row update is resolved to product-not-found or
// insufficient-stock, and any failure rolls back every line.
func (r *PostgresHistoryRepository) Create(lines []domain.LineRequest) (*domain.StockOutHistory, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptyRequest
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	history := &domain.StockOutHistory{
		Date:  time.Now(),
		Items: make([]domain.StockOutItem, 0, len(lines)),
	}

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}

		var (
			name     string
			brand    string
			category string
			price    float64
		)
		err := tx.QueryRow(`
			UPDATE products
			SET quantity = quantity - $1, updated_at = NOW()
			WHERE id = $2 AND deleted_at IS NULL AND quantity >= $1
			RETURNING name, brand, category, price
		`, line.Quantity, line.ProductID).Scan(&name, &brand, &category, &price)

		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.resolveRejection(tx, line)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}

		cost := float64(line.Quantity) * price
		history.Items = append(history.Items, domain.StockOutItem{
			ProductID:    line.ProductID,
			ProductName:  name,
			ProductBrand: brand,
			Category:     category,
			Quantity:     line.Quantity,
			Price:        price,
			Cost:         cost,
		})
		history.TotalCost += cost
	}

	err = tx.QueryRow(`
		INSERT INTO stock_out_histories (date, total_cost)
		VALUES ($1, $2)
		RETURNING id
	`, history.Date, history.TotalCost).Scan(&history.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create history record: %w", err)
	}

	for i := range history.Items {
		item := &history.Items[i]
		item.HistoryID = history.ID
		err := tx.QueryRow(`
			INSERT INTO stock_out_items
				(history_id, product_id, product_name, product_brand, category, quantity, price, cost)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, item.HistoryID, item.ProductID, item.ProductName, item.ProductBrand,
			item.Category, item.Quantity, item.Price, item.Cost).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create history item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return history, nil
}

// resolveRejection tells a missing product apart from short stock after a
// conditional decrement matched no row.
func (r *PostgresHistoryRepository) resolveRejection(tx *sql.Tx, line domain.LineRequest) error {
	var (
		name      string
		available int
	)
	err := tx.QueryRow(`
		SELECT name, quantity FROM products
		WHERE id = $1 AND deleted_at IS NULL
	`, line.ProductID).Scan(&name, &available)

	if errors.Is(err, sql.ErrNoRows) {
		return &domain.ProductNotFoundError{ProductID: line.ProductID}
	}
	if err != nil {
		return fmt.Errorf("failed to look up product: %w", err)
	}

	return &inventory.InsufficientStockError{
		ProductID:   line.ProductID,
		ProductName: name,
		Available:   available,
		Requested:   line.Quantity,
	}
}

// FindAll retrieves all history records, most recent first
func (r *PostgresHistoryRepository) FindAll() ([]domain.StockOutHistory, error) {
	return r.query(`
		SELECT id, date, total_cost
		FROM stock_out_histories
		ORDER BY date DESC
	`)
}

// FindByDateRange retrieves records whose date falls within [start, end]
func (r *PostgresHistoryRepository) FindByDateRange(start, end time.Time) ([]domain.StockOutHistory, error) {
	return r.query(`
		SELECT id, date, total_cost
		FROM stock_out_histories
		WHERE date >= $1 AND date <= $2
		ORDER BY date DESC
	`, start, end)
}

func (r *PostgresHistoryRepository) query(query string, args ...interface{}) ([]domain.StockOutHistory, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	histories := []domain.StockOutHistory{}
	index := map[uint]int{}
	ids := []uint{}

	for rows.Next() {
		history := domain.StockOutHistory{Items: []domain.StockOutItem{}}
		if err := rows.Scan(&history.ID, &history.Date, &history.TotalCost); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		index[history.ID] = len(histories)
		ids = append(ids, history.ID)
		histories = append(histories, history)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	if len(ids) == 0 {
		return histories, nil
	}

	if err := r.loadItems(histories, index, ids); err != nil {
		return nil, err
	}
	return histories, nil
}

func (r *PostgresHistoryRepository) loadItems(histories []domain.StockOutHistory, index map[uint]int, ids []uint) error {
	rows, err := r.db.Query(`
		SELECT id, history_id, product_id, product_name, product_brand, category, quantity, price, cost
		FROM stock_out_items
		WHERE history_id = ANY($1)
		ORDER BY id ASC
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to query history items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.StockOutItem
		err := rows.Scan(
			&item.ID,
			&item.HistoryID,
			&item.ProductID,
			&item.ProductName,
			&item.ProductBrand,
			&item.Category,
			&item.Quantity,
			&item.Price,
			&item.Cost,
		)
		if err != nil {
			return fmt.Errorf("failed to scan history item: %w", err)
		}
		if i, ok := index[item.HistoryID]; ok {
			histories[i].Items = append(histories[i].Items, item)
		}
	}
	return rows.Err()
}
