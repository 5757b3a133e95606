package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sandy-me/Inventory-management-system/models"
)

// ProductList returns all products
func (h *Handler) ProductList(c *fiber.Ctx) error {
	products, err := h.Products.FetchAll()
	if err != nil {
		return fail(c, "Failed to fetch products", err)
	}
	return c.JSON(products)
}

// ProductLowStock returns products below their reorder level
func (h *Handler) ProductLowStock(c *fiber.Ctx) error {
	products, err := h.Products.FetchLowStock()
	if err != nil {
		return fail(c, "Failed to fetch low stock products", err)
	}
	return c.JSON(products)
}

// ProductCreate creates a new product
func (h *Handler) ProductCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "Invalid product payload: "+err.Error())
	}

	if err := h.Products.Create(&product); err != nil {
		return fail(c, "Failed to create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(&product)
}

// ProductUpdate overwrites the product with the given id
func (h *Handler) ProductUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "Invalid product payload: "+err.Error())
	}
	product.ProductID = id

	updated, err := h.Products.Update(&product)
	if err != nil {
		return fail(c, "Failed to update product", err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}

// ProductDelete deletes the product with the given id
func (h *Handler) ProductDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	deleted, err := h.Products.Delete(id)
	if err != nil {
		return fail(c, "Failed to delete product", err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
