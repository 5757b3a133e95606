// Package handlers exposes the repositories and the alert workflow
// over JSON. Input validation (malformed ids, non-numeric fields)
// happens here, before anything reaches the core; the core assumes
// well-typed inputs.
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/repository"
	"github.com/Sandy-me/Inventory-management-system/services"
)

// Handler carries the repositories and services the routes call into.
// Everything is injected at construction; no package-level state.
type Handler struct {
	Categories *repository.CategoryRepository
	Suppliers  *repository.SupplierRepository
	Products   *repository.ProductRepository
	Batches    *repository.BatchRepository
	Purchases  *repository.PurchaseHistoryRepository
	Linkages   *repository.SupplierProductLinkageRepository
	LowStock   *services.LowStockService
	QueryLog   *database.QueryLogger
}

// New wires every repository and service onto one shared manager.
func New(manager *database.Manager) *Handler {
	products := repository.NewProductRepository(manager)
	return &Handler{
		Categories: repository.NewCategoryRepository(manager),
		Suppliers:  repository.NewSupplierRepository(manager),
		Products:   products,
		Batches:    repository.NewBatchRepository(manager),
		Purchases:  repository.NewPurchaseHistoryRepository(manager),
		Linkages:   repository.NewSupplierProductLinkageRepository(manager),
		LowStock:   services.NewLowStockService(products),
		QueryLog:   manager.QueryLog(),
	}
}

// fail maps a core failure onto the wire: an action description
// paired with the underlying error text.
func fail(c *fiber.Ctx, action string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": action + ": " + err.Error(),
	})
}

// badRequest reports malformed caller input.
func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// paramID parses the :id path segment.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
