package domain

import (
	"fmt"

	inventory "github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
)

// ProductNotFoundError names the missing product of a rejected batch
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error {
	return inventory.ErrProductNotFound
}
