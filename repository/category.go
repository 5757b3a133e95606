package repository

import (
	"github.com/Sandy-me/Inventory-management-system/database"
	"github.com/Sandy-me/Inventory-management-system/models"
)

// CategoryRepository persists Category entities.
type CategoryRepository struct {
	manager *database.Manager
}

func NewCategoryRepository(manager *database.Manager) *CategoryRepository {
	return &CategoryRepository{manager: manager}
}

// Create inserts the category and writes the generated id back into
// the entity. The category must not have been persisted before.
func (r *CategoryRepository) Create(c *models.Category) error {
	if c.CategoryID != 0 {
		return persistence("category", "create", ErrIDAssigned)
	}
	db, err := r.manager.Acquire()
	if err != nil {
		return err
	}

	var id uint
	result := db.Raw(
		"INSERT INTO categories (category_name) VALUES (?) RETURNING category_id",
		c.Name,
	).Scan(&id)
	database.ObserveStatement("category", "create", result.Error)
	if result.Error != nil {
		return persistence("category", "create", result.Error)
	}
	if id == 0 {
		return persistence("category", "create", ErrNoGeneratedKey)
	}

	c.SetCategoryID(id)
	return nil
}

// Update overwrites all mutable columns of the matching row. Returns
// false with no error when no row matched the id.
func (r *CategoryRepository) Update(c *models.Category) (bool, error) {
	if c.CategoryID == 0 {
		return false, persistence("category", "update", ErrNoID)
	}
	db, err := r.manager.Acquire()
	if err != nil {
		return false, err
	}

	result := db.Exec(
		"UPDATE categories SET category_name = ? WHERE category_id = ?",
		c.Name, c.CategoryID,
	)
	database.ObserveStatement("category", "update", result.Error)
	if result.Error != nil {
		return false, persistence("category", "update", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the row with the given id. Returns false with no
// error when no such row exists.
func (r *CategoryRepository) Delete(id uint) (bool, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return false, err
	}

	result := db.Exec("DELETE FROM categories WHERE category_id = ?", id)
	database.ObserveStatement("category", "delete", result.Error)
	if result.Error != nil {
		return false, persistence("category", "delete", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// FetchAll returns every category in the store's natural return order
// (insertion order, best effort).
func (r *CategoryRepository) FetchAll() ([]*models.Category, error) {
	db, err := r.manager.Acquire()
	if err != nil {
		return nil, err
	}

	var categories []*models.Category
	result := db.Raw("SELECT * FROM categories").Scan(&categories)
	database.ObserveStatement("category", "fetch_all", result.Error)
	if result.Error != nil {
		return nil, persistence("category", "fetch", result.Error)
	}
	return categories, nil
}
