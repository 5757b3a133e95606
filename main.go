package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sandy-me/Inventory-management-system/config"
	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/web"
)

func main() {
	var help = flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The one shared connection manager; the handle opens lazily on
	// the first repository call.
	manager := database.New(&cfg.Database)
	defer manager.Release()

	// Verify the store is reachable before serving
	if _, err := manager.Acquire(); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	// Create and start web server
	server := web.NewServer(manager)

	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

func showHelp() {
	log.Println(`
Inventory Management System Server

Usage:
  go run main.go [options]

Options:
  -help     Show this help message

Configuration comes from the environment (or a .env file):
  DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE
  APP_PORT, APP_ENV

The relational schema is assumed to exist already.

For the headless low-stock alert, use:
  go run cmd/alert/main.go`)
}
