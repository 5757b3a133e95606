// Package services holds the alerting workflow built on top of the
// repositories: the low-stock query and the message formatter.
package services

import (
	"github.com/Sandy-me/Inventory-management-system/models"
	"github.com/Sandy-me/Inventory-management-system/repository"
)

// LowStockService is the derived read over products whose stock has
// fallen below their reorder level. Results are always fresh from the
// store; callers poll by re-invoking FetchLowStock.
type LowStockService struct {
	products *repository.ProductRepository
}

func NewLowStockService(products *repository.ProductRepository) *LowStockService {
	return &LowStockService{products: products}
}

// FetchLowStock returns every product with quantity_in_stock below
// reorder_level, evaluated by the store at call time.
func (s *LowStockService) FetchLowStock() ([]*models.Product, error) {
	return s.products.FetchLowStock()
}
