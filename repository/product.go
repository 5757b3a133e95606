package repository

import (
	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/models"
)

// ProductRepository persists Product entities and serves the
// low-stock read path.
type ProductRepository struct {
	manager *database.Manager
}

func NewProductRepository(manager *database.Manager) *ProductRepository {
	return &ProductRepository{manager: manager}
}

// Create inserts the product and writes the generated id back into
// the entity.
func (r *ProductRepository) Create(p *models.Product) error {
	if p.ProductID != 0 {
		return persistence("product", "create", ErrIDAssigned)
	}
	db, err := r.manager.Acquire()
	if err != nil {
		return err
	}

	var id uint
	result := db.Raw(
		`INSERT INTO products (name, category_id, sku, quantity_in_stock, reorder_level, supplier_id, batch_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING product_id`,
		p.Name, p.CategoryID, p.SKU, p.QuantityInStock, p.ReorderLevel, p.SupplierID, p.BatchID,
	).Scan(&id)
	database.ObserveStatement("product", "create", result.Error)
	if result.Error != nil {
		return persistence("product", "create", result.Error)
	}
	if id == 0 {
		return persistence("product", "create", ErrNoGeneratedKey)
	}

	p.SetProductID(id)
	return nil
}

// Update overwrites all mutable columns of the matching row. Returns
// false with no error when no row matched the id.
func (r *ProductRepository) Update(p *models.Product) (bool, error) {
	if p.ProductID == 0 {
		return false, persistence("product", "update", ErrNoID)
	}
	db, err := r.manager.Acquire()
	if err != nil {
		return false, err
	}

	result := db.Exec(
		`UPDATE products
		 SET name = ?, category_id = ?, sku = ?, quantity_in_stock = ?, reorder_level = ?, supplier_id = ?, batch_id = ?
		 WHERE product_id = ?`,
		p.Name, p.CategoryID, p.SKU, p.QuantityInStock, p.ReorderLevel, p.SupplierID, p.BatchID, p.ProductID,
	)
	database.ObserveStatement("product", "update", result.Error)
	if result.Error != nil {
		return false, persistence("product", "update", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the row with the given id. Idempotent.
func (r *ProductRepository) Delete(id uint) (bool, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return false, err
	}

	result := db.Exec("DELETE FROM products WHERE product_id = ?", id)
	database.ObserveStatement("product", "delete", result.Error)
	if result.Error != nil {
		return false, persistence("product", "delete", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// FetchAll returns every product in the store's natural return order.
func (r *ProductRepository) FetchAll() ([]*models.Product, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return nil, err
	}

	var products []*models.Product
	result := db.Raw("SELECT * FROM products").Scan(&products)
	database.ObserveStatement("product", "fetch_all", result.Error)
	if result.Error != nil {
		return nil, persistence("product", "fetch", result.Error)
	}
	return products, nil
}

// FetchLowStock returns products whose stock has fallen below their
// reorder level. The comparison runs in the store so it is
// authoritative even with concurrent writers.
func (r *ProductRepository) FetchLowStock() ([]*models.Product, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return nil, err
	}

	var products []*models.Product
	result := db.Raw("SELECT * FROM products WHERE quantity_in_stock < reorder_level").Scan(&products)
	database.ObserveStatement("product", "fetch_low_stock", result.Error)
	if result.Error != nil {
		return nil, persistence("product", "fetch", result.Error)
	}
	return products, nil
}
