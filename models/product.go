package models

// Product represents the products table. CategoryID, SupplierID and
// BatchID reference their tables by id only; nothing is enforced in
// memory. A product is low-stock when QuantityInStock < ReorderLevel,
// but that predicate is always evaluated by the store (see the
// low-stock query), never client-side.
type Product struct {
	Observable `gorm:"-" json:"-"`

	ProductID       uint   `gorm:"primaryKey;column:product_id" json:"product_id"`
	Name            string `gorm:"type:varchar(200);not null;column:name" json:"name"`
	CategoryID      uint   `gorm:"column:category_id" json:"category_id"`
	SKU             string `gorm:"type:varchar(50);column:sku" json:"sku"`
	QuantityInStock int    `gorm:"column:quantity_in_stock" json:"quantity_in_stock"`
	ReorderLevel    int    `gorm:"column:reorder_level" json:"reorder_level"`
	SupplierID      uint   `gorm:"column:supplier_id" json:"supplier_id"`
	BatchID         uint   `gorm:"column:batch_id" json:"batch_id"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// SetProductID records the store-generated id on the entity.
func (p *Product) SetProductID(id uint) {
	old := p.ProductID
	p.ProductID = id
	p.notify("product_id", old, id)
}

func (p *Product) SetName(name string) {
	old := p.Name
	p.Name = name
	p.notify("name", old, name)
}

func (p *Product) SetCategoryID(id uint) {
	old := p.CategoryID
	p.CategoryID = id
	p.notify("category_id", old, id)
}

func (p *Product) SetSKU(sku string) {
	old := p.SKU
	p.SKU = sku
	p.notify("sku", old, sku)
}

func (p *Product) SetQuantityInStock(quantity int) {
	old := p.QuantityInStock
	p.QuantityInStock = quantity
	p.notify("quantity_in_stock", old, quantity)
}

func (p *Product) SetReorderLevel(level int) {
	old := p.ReorderLevel
	p.ReorderLevel = level
	p.notify("reorder_level", old, level)
}

func (p *Product) SetSupplierID(id uint) {
	old := p.SupplierID
	p.SupplierID = id
	p.notify("supplier_id", old, id)
}

func (p *Product) SetBatchID(id uint) {
	old := p.BatchID
	p.BatchID = id
	p.notify("batch_id", old, id)
}
