package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"

	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/models"
	"github.com/Sandy-me/Inventory-management-system/repository"
)

func newTestProducts(t *testing.T) *repository.ProductRepository {
	t.Helper()

	manager := database.NewWithDialector(sqlite.Open(":memory:"))
	t.Cleanup(func() { manager.Release() })

	db, err := manager.Acquire()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	return repository.NewProductRepository(manager)
}

func TestLowStockServiceMatchesPredicate(t *testing.T) {
	products := newTestProducts(t)
	service := NewLowStockService(products)

	require.NoError(t, products.Create(&models.Product{Name: "Cola", SKU: "COLA-001", QuantityInStock: 5, ReorderLevel: 10}))
	require.NoError(t, products.Create(&models.Product{Name: "Water", SKU: "WAT-001", QuantityInStock: 50, ReorderLevel: 10}))

	lowStock, err := service.FetchLowStock()
	require.NoError(t, err)
	require.Len(t, lowStock, 1)
	require.Equal(t, "Cola", lowStock[0].Name)
}

func TestLowStockServiceIsFreshPerCall(t *testing.T) {
	products := newTestProducts(t)
	service := NewLowStockService(products)

	product := &models.Product{Name: "Crisps", SKU: "CRI-001", QuantityInStock: 50, ReorderLevel: 10}
	require.NoError(t, products.Create(product))

	lowStock, err := service.FetchLowStock()
	require.NoError(t, err)
	require.Empty(t, lowStock)

	product.SetQuantityInStock(2)
	_, err = products.Update(product)
	require.NoError(t, err)

	lowStock, err = service.FetchLowStock()
	require.NoError(t, err)
	require.Len(t, lowStock, 1)

	message := FormatLowStockAlert(lowStock)
	require.Equal(t, "Low stock alert for: Crisps - Stock Level: 2\n", message)
}
