package repository

import (
	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/models"
)

// SupplierRepository persists Supplier entities.
type SupplierRepository struct {
	manager *database.Manager
}

func NewSupplierRepository(manager *database.Manager) *SupplierRepository {
	return &SupplierRepository{manager: manager}
}

// Create inserts the supplier and writes the generated id back into
// the entity.
func (r *SupplierRepository) Create(s *models.Supplier) error {
	if s.SupplierID != 0 {
		return persistence("supplier", "create", ErrIDAssigned)
	}
	db, err := r.manager.Acquire()
	if err != nil {
		return err
	}

	var id uint
	result := db.Raw(
		"INSERT INTO suppliers (name, contact_info, address) VALUES (?, ?, ?) RETURNING supplier_id",
		s.Name, s.ContactInfo, s.Address,
	).Scan(&id)
	database.ObserveStatement("supplier", "create", result.Error)
	if result.Error != nil {
		return persistence("supplier", "create", result.Error)
	}
	if id == 0 {
		return persistence("supplier", "create", ErrNoGeneratedKey)
	}

	s.SetSupplierID(id)
	return nil
}

// Update overwrites all mutable columns of the matching row. Returns
// false with no error when no row matched the id.
func (r *SupplierRepository) Update(s *models.Supplier) (bool, error) {
	if s.SupplierID == 0 {
		return false, persistence("supplier", "update", ErrNoID)
	}
	db, err := r.manager.Acquire()
	if err != nil {
		return false, err
	}

	result := db.Exec(
		"UPDATE suppliers SET name = ?, contact_info = ?, address = ? WHERE supplier_id = ?",
		s.Name, s.ContactInfo, s.Address, s.SupplierID,
	)
	database.ObserveStatement("supplier", "update", result.Error)
	if result.Error != nil {
		return false, persistence("supplier", "update", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the row with the given id. Idempotent.
func (r *SupplierRepository) Delete(id uint) (bool, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return false, err
	}

	result := db.Exec("DELETE FROM suppliers WHERE supplier_id = ?", id)
	database.ObserveStatement("supplier", "delete", result.Error)
	if result.Error != nil {
		return false, persistence("supplier", "delete", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// FetchAll returns every supplier in the store's natural return order.
func (r *SupplierRepository) FetchAll() ([]*models.Supplier, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return nil, err
	}

	var suppliers []*models.Supplier
	result := db.Raw("SELECT * FROM suppliers").Scan(&suppliers)
	database.ObserveStatement("supplier", "fetch_all", result.Error)
	if result.Error != nil {
		return nil, persistence("supplier", "fetch", result.Error)
	}
	return suppliers, nil
}
