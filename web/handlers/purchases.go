package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Sandy-me/Inventory-management-system/models"
)

// PurchaseList returns the purchase history, optionally scoped to one
// product via the product_id query parameter
func (h *Handler) PurchaseList(c *fiber.Ctx) error {
	if raw := c.Query("product_id"); raw != "" {
		productID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid product_id")
		}
		history, err := h.Purchases.FetchByProductID(uint(productID))
		if err != nil {
			return fail(c, "Failed to fetch purchase history", err)
		}
		return c.JSON(history)
	}

	history, err := h.Purchases.FetchAll()
	if err != nil {
		return fail(c, "Failed to fetch purchase history", err)
	}
	return c.JSON(history)
}

// PurchaseCreate appends a purchase record. The table is append-only;
// there is no update or delete route.
func (h *Handler) PurchaseCreate(c *fiber.Ctx) error {
	var purchase models.PurchaseHistory
	if err := c.BodyParser(&purchase); err != nil {
		return badRequest(c, "Invalid purchase payload: "+err.Error())
	}

	if err := h.Purchases.Create(&purchase); err != nil {
		return fail(c, "Failed to record purchase", err)
	}
	return c.Status(fiber.StatusCreated).JSON(&purchase)
}
