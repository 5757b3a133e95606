package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sandy-me/Inventory-management-system/models"
)

func TestLinkageCreateDelete(t *testing.T) {
	linkages := NewSupplierProductLinkageRepository(newTestManager(t))

	linkage := &models.SupplierProductLinkage{SupplierID: 2, ProductID: 5}
	require.NoError(t, linkages.Create(linkage))
	require.Greater(t, linkage.SupplierProductID, uint(0))

	all, err := linkages.FetchAll()
	require.NoError(t, err)
	require.Len(t, all, 1)

	deleted, err := linkages.Delete(linkage.SupplierProductID)
	require.NoError(t, err)
	require.True(t, deleted)

	// Deleting again is a no-op
	deleted, err = linkages.Delete(linkage.SupplierProductID)
	require.NoError(t, err)
	require.False(t, deleted)

	all, err = linkages.FetchAll()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestLinkageFetchBySupplierID(t *testing.T) {
	linkages := NewSupplierProductLinkageRepository(newTestManager(t))

	require.NoError(t, linkages.Create(&models.SupplierProductLinkage{SupplierID: 2, ProductID: 5}))
	require.NoError(t, linkages.Create(&models.SupplierProductLinkage{SupplierID: 2, ProductID: 6}))
	require.NoError(t, linkages.Create(&models.SupplierProductLinkage{SupplierID: 3, ProductID: 5}))

	forSupplier, err := linkages.FetchBySupplierID(2)
	require.NoError(t, err)
	require.Len(t, forSupplier, 2)
	for _, l := range forSupplier {
		require.Equal(t, uint(2), l.SupplierID)
	}
}
