package models

// Category represents the categories table
type Category struct {
	Observable `gorm:"-" json:"-"`

	CategoryID uint   `gorm:"primaryKey;column:category_id" json:"category_id"`
	Name       string `gorm:"type:varchar(100);not null;column:category_name" json:"category_name"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// SetCategoryID records the store-generated id on the entity.
func (c *Category) SetCategoryID(id uint) {
	old := c.CategoryID
	c.CategoryID = id
	c.notify("category_id", old, id)
}

func (c *Category) SetName(name string) {
	old := c.Name
	c.Name = name
	c.notify("category_name", old, name)
}
