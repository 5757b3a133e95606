package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sandy-me/Inventory-management-system/services"
)

// LowStockAlert runs the alert workflow: fetch the low-stock products
// and format the alert message
func (h *Handler) LowStockAlert(c *fiber.Ctx) error {
	products, err := h.LowStock.FetchLowStock()
	if err != nil {
		return fail(c, "Failed to fetch low stock products", err)
	}

	return c.JSON(fiber.Map{
		"message":  services.FormatLowStockAlert(products),
		"products": products,
	})
}
