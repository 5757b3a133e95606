package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sandy-me/Inventory-management-system/models"
)

func TestFormatLowStockAlertEmpty(t *testing.T) {
	assert.Equal(t, "No low stock products.", FormatLowStockAlert(nil))
	assert.Equal(t, "No low stock products.", FormatLowStockAlert([]*models.Product{}))
}

func TestFormatLowStockAlertLines(t *testing.T) {
	products := []*models.Product{
		{Name: "Cola", QuantityInStock: 5},
		{Name: "Bread", QuantityInStock: 2},
	}

	want := "Low stock alert for: Cola - Stock Level: 5\n" +
		"Low stock alert for: Bread - Stock Level: 2\n"
	assert.Equal(t, want, FormatLowStockAlert(products))
}

func TestFormatLowStockAlertPreservesInputOrder(t *testing.T) {
	products := []*models.Product{
		{Name: "Zucchini", QuantityInStock: 1},
		{Name: "Apples", QuantityInStock: 3},
	}

	want := "Low stock alert for: Zucchini - Stock Level: 1\n" +
		"Low stock alert for: Apples - Stock Level: 3\n"
	assert.Equal(t, want, FormatLowStockAlert(products))
}
