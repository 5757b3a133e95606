package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Sandy-me/Inventory-management-system/models"
)

// BatchList returns all batches, or the batches of one product when
// the product_id query parameter is present
func (h *Handler) BatchList(c *fiber.Ctx) error {
	if raw := c.Query("product_id"); raw != "" {
		productID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid product_id")
		}
		batches, err := h.Batches.FetchByProductID(uint(productID))
		if err != nil {
			return fail(c, "Failed to fetch batches", err)
		}
		return c.JSON(batches)
	}

	batches, err := h.Batches.FetchAll()
	if err != nil {
		return fail(c, "Failed to fetch batches", err)
	}
	return c.JSON(batches)
}

// BatchCreate creates a new batch
func (h *Handler) BatchCreate(c *fiber.Ctx) error {
	var batch models.Batch
	if err := c.BodyParser(&batch); err != nil {
		return badRequest(c, "Invalid batch payload: "+err.Error())
	}

	if err := h.Batches.Create(&batch); err != nil {
		return fail(c, "Failed to create batch", err)
	}
	return c.Status(fiber.StatusCreated).JSON(&batch)
}

// BatchUpdate overwrites the batch with the given id
func (h *Handler) BatchUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid batch id")
	}

	var batch models.Batch
	if err := c.BodyParser(&batch); err != nil {
		return badRequest(c, "Invalid batch payload: "+err.Error())
	}
	batch.BatchID = id

	updated, err := h.Batches.Update(&batch)
	if err != nil {
		return fail(c, "Failed to update batch", err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}

// BatchDelete deletes the batch with the given id
func (h *Handler) BatchDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid batch id")
	}

	deleted, err := h.Batches.Delete(id)
	if err != nil {
		return fail(c, "Failed to delete batch", err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
