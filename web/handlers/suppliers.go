package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sandy-me/Inventory-management-system/models"
)

// SupplierList returns all suppliers
func (h *Handler) SupplierList(c *fiber.Ctx) error {
	suppliers, err := h.Suppliers.FetchAll()
	if err != nil {
		return fail(c, "Failed to fetch suppliers", err)
	}
	return c.JSON(suppliers)
}

// SupplierCreate creates a new supplier
func (h *Handler) SupplierCreate(c *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return badRequest(c, "Invalid supplier payload: "+err.Error())
	}

	if err := h.Suppliers.Create(&supplier); err != nil {
		return fail(c, "Failed to create supplier", err)
	}
	return c.Status(fiber.StatusCreated).JSON(&supplier)
}

// SupplierUpdate overwrites the supplier with the given id
func (h *Handler) SupplierUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid supplier id")
	}

	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return badRequest(c, "Invalid supplier payload: "+err.Error())
	}
	supplier.SupplierID = id

	updated, err := h.Suppliers.Update(&supplier)
	if err != nil {
		return fail(c, "Failed to update supplier", err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}

// SupplierDelete deletes the supplier with the given id
func (h *Handler) SupplierDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid supplier id")
	}

	deleted, err := h.Suppliers.Delete(id)
	if err != nil {
		return fail(c, "Failed to delete supplier", err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
