package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Sandy-me/Inventory-management-system/models"
)

// LinkageList returns supplier↔product linkages, optionally scoped to
// one supplier via the supplier_id query parameter
func (h *Handler) LinkageList(c *fiber.Ctx) error {
	if raw := c.Query("supplier_id"); raw != "" {
		supplierID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid supplier_id")
		}
		linkages, err := h.Linkages.FetchBySupplierID(uint(supplierID))
		if err != nil {
			return fail(c, "Failed to fetch linkages", err)
		}
		return c.JSON(linkages)
	}

	linkages, err := h.Linkages.FetchAll()
	if err != nil {
		return fail(c, "Failed to fetch linkages", err)
	}
	return c.JSON(linkages)
}

// LinkageCreate creates a new supplier↔product linkage
func (h *Handler) LinkageCreate(c *fiber.Ctx) error {
	var linkage models.SupplierProductLinkage
	if err := c.BodyParser(&linkage); err != nil {
		return badRequest(c, "Invalid linkage payload: "+err.Error())
	}

	if err := h.Linkages.Create(&linkage); err != nil {
		return fail(c, "Failed to create linkage", err)
	}
	return c.Status(fiber.StatusCreated).JSON(&linkage)
}

// LinkageDelete deletes the linkage with the given id
func (h *Handler) LinkageDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid linkage id")
	}

	deleted, err := h.Linkages.Delete(id)
	if err != nil {
		return fail(c, "Failed to delete linkage", err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
