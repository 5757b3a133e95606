package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sandy-me/Inventory-management-system/models"
)

func TestPurchaseHistoryAppend(t *testing.T) {
	purchases := NewPurchaseHistoryRepository(newTestManager(t))

	record := &models.PurchaseHistory{
		ProductID:    4,
		SupplierID:   2,
		PurchaseDate: "2024-11-05",
		Quantity:     30,
		Cost:         149.50,
	}
	require.NoError(t, purchases.Create(record))
	require.Greater(t, record.PurchaseID, uint(0))

	all, err := purchases.FetchAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, record.PurchaseID, all[0].PurchaseID)
	require.Equal(t, "2024-11-05", all[0].PurchaseDate)
	require.Equal(t, 30, all[0].Quantity)
	require.InDelta(t, 149.50, all[0].Cost, 0.001)
}

func TestPurchaseHistoryFetchByProductID(t *testing.T) {
	purchases := NewPurchaseHistoryRepository(newTestManager(t))

	require.NoError(t, purchases.Create(&models.PurchaseHistory{ProductID: 4, SupplierID: 2, PurchaseDate: "2024-11-05", Quantity: 30, Cost: 149.50}))
	require.NoError(t, purchases.Create(&models.PurchaseHistory{ProductID: 9, SupplierID: 2, PurchaseDate: "2024-11-06", Quantity: 5, Cost: 12.00}))

	forProduct, err := purchases.FetchByProductID(4)
	require.NoError(t, err)
	require.Len(t, forProduct, 1)
	require.Equal(t, uint(4), forProduct[0].ProductID)
}

func TestPurchaseHistoryCreateRejectsAssignedID(t *testing.T) {
	purchases := NewPurchaseHistoryRepository(newTestManager(t))

	err := purchases.Create(&models.PurchaseHistory{PurchaseID: 1, ProductID: 4})
	require.Error(t, err)
}
