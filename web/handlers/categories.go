package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sandy-me/Inventory-management-system/models"
)

// CategoryList returns all categories
func (h *Handler) CategoryList(c *fiber.Ctx) error {
	categories, err := h.Categories.FetchAll()
	if err != nil {
		return fail(c, "Failed to fetch categories", err)
	}
	return c.JSON(categories)
}

// CategoryCreate creates a new category
func (h *Handler) CategoryCreate(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return badRequest(c, "Invalid category payload: "+err.Error())
	}

	if err := h.Categories.Create(&category); err != nil {
		return fail(c, "Failed to create category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(&category)
}

// CategoryUpdate overwrites the category with the given id
func (h *Handler) CategoryUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return badRequest(c, "Invalid category payload: "+err.Error())
	}
	category.CategoryID = id

	updated, err := h.Categories.Update(&category)
	if err != nil {
		return fail(c, "Failed to update category", err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}

// CategoryDelete deletes the category with the given id
func (h *Handler) CategoryDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	deleted, err := h.Categories.Delete(id)
	if err != nil {
		return fail(c, "Failed to delete category", err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
