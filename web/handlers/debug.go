package handlers

import "github.com/gofiber/fiber/v2"

// GetSQLLogs returns the recently executed SQL statements
func (h *Handler) GetSQLLogs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"queries": h.QueryLog.GetQueries(),
	})
}

// ClearSQLLogs clears the SQL statement log
func (h *Handler) ClearSQLLogs(c *fiber.Ctx) error {
	h.QueryLog.Clear()
	return c.JSON(fiber.Map{"cleared": true})
}
