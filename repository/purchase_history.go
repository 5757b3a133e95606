package repository

import (
	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/models"
)

// PurchaseHistoryRepository persists PurchaseHistory entities. The
// table is append-only, so only Create and the fetches exist.
type PurchaseHistoryRepository struct {
	manager *database.Manager
}

func NewPurchaseHistoryRepository(manager *database.Manager) *PurchaseHistoryRepository {
	return &PurchaseHistoryRepository{manager: manager}
}

// Create inserts the purchase record and writes the generated id back
// into the entity.
func (r *PurchaseHistoryRepository) Create(ph *models.PurchaseHistory) error {
	if ph.PurchaseID != 0 {
		return persistence("purchase_history", "create", ErrIDAssigned)
	}
	db, err := r.manager.Acquire()
	if err != nil {
		return err
	}

	var id uint
	result := db.Raw(
		`INSERT INTO purchase_history (product_id, supplier_id, purchase_date, quantity, cost)
		 VALUES (?, ?, ?, ?, ?) RETURNING purchase_id`,
		ph.ProductID, ph.SupplierID, ph.PurchaseDate, ph.Quantity, ph.Cost,
	).Scan(&id)
	database.ObserveStatement("purchase_history", "create", result.Error)
	if result.Error != nil {
		return persistence("purchase_history", "create", result.Error)
	}
	if id == 0 {
		return persistence("purchase_history", "create", ErrNoGeneratedKey)
	}

	ph.SetPurchaseID(id)
	return nil
}

// FetchAll returns every purchase record in the store's natural
// return order.
func (r *PurchaseHistoryRepository) FetchAll() ([]*models.PurchaseHistory, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return nil, err
	}

	var history []*models.PurchaseHistory
	result := db.Raw("SELECT * FROM purchase_history").Scan(&history)
	database.ObserveStatement("purchase_history", "fetch_all", result.Error)
	if result.Error != nil {
		return nil, persistence("purchase_history", "fetch", result.Error)
	}
	return history, nil
}

// FetchByProductID returns the purchase records for one product.
func (r *PurchaseHistoryRepository) FetchByProductID(productID uint) ([]*models.PurchaseHistory, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return nil, err
	}

	var history []*models.PurchaseHistory
	result := db.Raw("SELECT * FROM purchase_history WHERE product_id = ?", productID).Scan(&history)
	database.ObserveStatement("purchase_history", "fetch_by_product", result.Error)
	if result.Error != nil {
		return nil, persistence("purchase_history", "fetch", result.Error)
	}
	return history, nil
}
