package web

import (
	"log"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/web/handlers"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server wired onto the shared
// connection manager.
func NewServer(manager *database.Manager) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	h := handlers.New(manager)
	setupRoutes(app, h)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying Fiber app, used by handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler) {
	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", h.GetSQLLogs)
	app.Delete("/api/debug/sql", h.ClearSQLLogs)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Category management
	categories := app.Group("/categories")
	categories.Get("/", h.CategoryList)
	categories.Post("/", h.CategoryCreate)
	categories.Put("/:id", h.CategoryUpdate)
	categories.Delete("/:id", h.CategoryDelete)

	// Supplier management
	suppliers := app.Group("/suppliers")
	suppliers.Get("/", h.SupplierList)
	suppliers.Post("/", h.SupplierCreate)
	suppliers.Put("/:id", h.SupplierUpdate)
	suppliers.Delete("/:id", h.SupplierDelete)

	// Product management - specific routes before /:id routes
	products := app.Group("/products")
	products.Get("/", h.ProductList)
	products.Get("/low-stock", h.ProductLowStock)
	products.Post("/", h.ProductCreate)
	products.Put("/:id", h.ProductUpdate)
	products.Delete("/:id", h.ProductDelete)

	// Batch management
	batches := app.Group("/batches")
	batches.Get("/", h.BatchList)
	batches.Post("/", h.BatchCreate)
	batches.Put("/:id", h.BatchUpdate)
	batches.Delete("/:id", h.BatchDelete)

	// Purchase history (append-only)
	purchases := app.Group("/purchases")
	purchases.Get("/", h.PurchaseList)
	purchases.Post("/", h.PurchaseCreate)

	// Supplier-product linkages
	linkages := app.Group("/linkages")
	linkages.Get("/", h.LinkageList)
	linkages.Post("/", h.LinkageCreate)
	linkages.Delete("/:id", h.LinkageDelete)

	// Low stock alert workflow
	app.Get("/inventory/low-stock-alert", h.LowStockAlert)
}
