package models

// SupplierProductLinkage represents the supplier_product_linkage
// join table between suppliers and products. Linkages are created and
// deleted, never updated.
type SupplierProductLinkage struct {
	Observable `gorm:"-" json:"-"`

	SupplierProductID uint `gorm:"primaryKey;column:supplier_product_id" json:"supplier_product_id"`
	SupplierID        uint `gorm:"column:supplier_id" json:"supplier_id"`
	ProductID         uint `gorm:"column:product_id" json:"product_id"`
}

// TableName specifies the table name for SupplierProductLinkage
func (SupplierProductLinkage) TableName() string {
	return "supplier_product_linkage"
}

// SetSupplierProductID records the store-generated id on the entity.
func (l *SupplierProductLinkage) SetSupplierProductID(id uint) {
	old := l.SupplierProductID
	l.SupplierProductID = id
	l.notify("supplier_product_id", old, id)
}

func (l *SupplierProductLinkage) SetSupplierID(id uint) {
	old := l.SupplierID
	l.SupplierID = id
	l.notify("supplier_id", old, id)
}

func (l *SupplierProductLinkage) SetProductID(id uint) {
	old := l.ProductID
	l.ProductID = id
	l.notify("product_id", old, id)
}
