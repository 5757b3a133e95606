package repository

import (
	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/models"
)

// BatchRepository persists Batch entities.
type BatchRepository struct {
	manager *database.Manager
}

func NewBatchRepository(manager *database.Manager) *BatchRepository {
	return &BatchRepository{manager: manager}
}

// Create inserts the batch and writes the generated id back into the
// entity.
func (r *BatchRepository) Create(b *models.Batch) error {
	if b.BatchID != 0 {
		return persistence("batch", "create", ErrIDAssigned)
	}
	db, err := r.manager.Acquire()
	if err != nil {
		return err
	}

	var id uint
	result := db.Raw(
		"INSERT INTO batches (product_id, expiry_date, quantity_in_batch) VALUES (?, ?, ?) RETURNING batch_id",
		b.ProductID, b.ExpiryDate, b.QuantityInBatch,
	).Scan(&id)
	database.ObserveStatement("batch", "create", result.Error)
	if result.Error != nil {
		return persistence("batch", "create", result.Error)
	}
	if id == 0 {
		return persistence("batch", "create", ErrNoGeneratedKey)
	}

	b.SetBatchID(id)
	return nil
}

// Update overwrites all mutable columns of the matching row. Returns
// false with no error when no row matched the id.
func (r *BatchRepository) Update(b *models.Batch) (bool, error) {
	if b.BatchID == 0 {
		return false, persistence("batch", "update", ErrNoID)
	}
	db, err := r.manager.Acquire()
	if err != nil {
		return false, err
	}

	result := db.Exec(
		"UPDATE batches SET product_id = ?, expiry_date = ?, quantity_in_batch = ? WHERE batch_id = ?",
		b.ProductID, b.ExpiryDate, b.QuantityInBatch, b.BatchID,
	)
	database.ObserveStatement("batch", "update", result.Error)
	if result.Error != nil {
		return false, persistence("batch", "update", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the row with the given id. Idempotent.
func (r *BatchRepository) Delete(id uint) (bool, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return false, err
	}

	result := db.Exec("DELETE FROM batches WHERE batch_id = ?", id)
	database.ObserveStatement("batch", "delete", result.Error)
	if result.Error != nil {
		return false, persistence("batch", "delete", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// FetchAll returns every batch in the store's natural return order.
func (r *BatchRepository) FetchAll() ([]*models.Batch, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return nil, err
	}

	var batches []*models.Batch
	result := db.Raw("SELECT * FROM batches").Scan(&batches)
	database.ObserveStatement("batch", "fetch_all", result.Error)
	if result.Error != nil {
		return nil, persistence("batch", "fetch", result.Error)
	}
	return batches, nil
}

// FetchByProductID returns the batches recorded for one product.
func (r *BatchRepository) FetchByProductID(productID uint) ([]*models.Batch, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return nil, err
	}

	var batches []*models.Batch
	result := db.Raw("SELECT * FROM batches WHERE product_id = ?", productID).Scan(&batches)
	database.ObserveStatement("batch", "fetch_by_product", result.Error)
	if result.Error != nil {
		return nil, persistence("batch", "fetch", result.Error)
	}
	return batches, nil
}
