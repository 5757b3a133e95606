package repository

import (
	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/models"
)

// SupplierProductLinkageRepository persists the supplier↔product join
// records. Linkages are never updated, only created and deleted.
type SupplierProductLinkageRepository struct {
	manager *database.Manager
}

func NewSupplierProductLinkageRepository(manager *database.Manager) *SupplierProductLinkageRepository {
	return &SupplierProductLinkageRepository{manager: manager}
}

// Create inserts the linkage and writes the generated id back into
// the entity.
func (r *SupplierProductLinkageRepository) Create(l *models.SupplierProductLinkage) error {
	if l.SupplierProductID != 0 {
		return persistence("linkage", "create", ErrIDAssigned)
	}
	db, err := r.manager.Acquire()
	if err != nil {
		return err
	}

	var id uint
	result := db.Raw(
		"INSERT INTO supplier_product_linkage (supplier_id, product_id) VALUES (?, ?) RETURNING supplier_product_id",
		l.SupplierID, l.ProductID,
	).Scan(&id)
	database.ObserveStatement("linkage", "create", result.Error)
	if result.Error != nil {
		return persistence("linkage", "create", result.Error)
	}
	if id == 0 {
		return persistence("linkage", "create", ErrNoGeneratedKey)
	}

	l.SetSupplierProductID(id)
	return nil
}

// Delete removes the linkage with the given id. Idempotent.
func (r *SupplierProductLinkageRepository) Delete(id uint) (bool, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return false, err
	}

	result := db.Exec("DELETE FROM supplier_product_linkage WHERE supplier_product_id = ?", id)
	database.ObserveStatement("linkage", "delete", result.Error)
	if result.Error != nil {
		return false, persistence("linkage", "delete", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// FetchAll returns every linkage in the store's natural return order.
func (r *SupplierProductLinkageRepository) FetchAll() ([]*models.SupplierProductLinkage, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return nil, err
	}

	var linkages []*models.SupplierProductLinkage
	result := db.Raw("SELECT * FROM supplier_product_linkage").Scan(&linkages)
	database.ObserveStatement("linkage", "fetch_all", result.Error)
	if result.Error != nil {
		return nil, persistence("linkage", "fetch", result.Error)
	}
	return linkages, nil
}

// FetchBySupplierID returns the linkages recorded for one supplier.
func (r *SupplierProductLinkageRepository) FetchBySupplierID(supplierID uint) ([]*models.SupplierProductLinkage, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return nil, err
	}

	var linkages []*models.SupplierProductLinkage
	result := db.Raw("SELECT * FROM supplier_product_linkage WHERE supplier_id = ?", supplierID).Scan(&linkages)
	database.ObserveStatement("linkage", "fetch_by_supplier", result.Error)
	if result.Error != nil {
		return nil, persistence("linkage", "fetch", result.Error)
	}
	return linkages, nil
}
