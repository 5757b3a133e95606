// Command alert runs the low-stock alert workflow once and prints the
// formatted message: the headless equivalent of the alert dialog.
package main

import (
	"fmt"
	"log"

	"github.com/Sandy-me/Inventory-management-system/config"
	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/repository"
	"github.com/Sandy-me/Inventory-management-system/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	manager := database.New(&cfg.Database)
	defer manager.Release()

	lowStock := services.NewLowStockService(repository.NewProductRepository(manager))

	products, err := lowStock.FetchLowStock()
	if err != nil {
		log.Fatalf("Failed to fetch low stock products: %v", err)
	}

	message := services.FormatLowStockAlert(products)
	if len(products) == 0 {
		fmt.Println(message)
		return
	}
	// Each alert line is already newline-terminated.
	fmt.Print(message)
}
