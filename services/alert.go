package services

import (
	"strconv"
	"strings"

	"github.com/Sandy-me/Inventory-management-system/models"
)

// NoLowStockMessage is returned when no product is below its reorder
// level.
const NoLowStockMessage = "No low stock products."

// FormatLowStockAlert builds the human-readable alert for a set of
// low-stock products, one line per product in input order. Pure
// function, no I/O.
func FormatLowStockAlert(products []*models.Product) string {
	if len(products) == 0 {
		return NoLowStockMessage
	}

	var b strings.Builder
	for _, p := range products {
		b.WriteString("Low stock alert for: ")
		b.WriteString(p.Name)
		b.WriteString(" - Stock Level: ")
		b.WriteString(strconv.Itoa(p.QuantityInStock))
		b.WriteString("\n")
	}
	return b.String()
}
