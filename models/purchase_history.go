package models

// PurchaseHistory represents the purchase_history table. Rows are
// append-only: the repository exposes no update or delete for them.
type PurchaseHistory struct {
	Observable `gorm:"-" json:"-"`

	PurchaseID   uint    `gorm:"primaryKey;column:purchase_id" json:"purchase_id"`
	ProductID    uint    `gorm:"column:product_id" json:"product_id"`
	SupplierID   uint    `gorm:"column:supplier_id" json:"supplier_id"`
	PurchaseDate string  `gorm:"type:varchar(10);column:purchase_date" json:"purchase_date"`
	Quantity     int     `gorm:"column:quantity" json:"quantity"`
	Cost         float64 `gorm:"type:decimal(12,2);column:cost" json:"cost"`
}

// TableName specifies the table name for PurchaseHistory
func (PurchaseHistory) TableName() string {
	return "purchase_history"
}

// SetPurchaseID records the store-generated id on the entity.
func (ph *PurchaseHistory) SetPurchaseID(id uint) {
	old := ph.PurchaseID
	ph.PurchaseID = id
	ph.notify("purchase_id", old, id)
}

func (ph *PurchaseHistory) SetProductID(id uint) {
	old := ph.ProductID
	ph.ProductID = id
	ph.notify("product_id", old, id)
}

func (ph *PurchaseHistory) SetSupplierID(id uint) {
	old := ph.SupplierID
	ph.SupplierID = id
	ph.notify("supplier_id", old, id)
}

func (ph *PurchaseHistory) SetPurchaseDate(date string) {
	old := ph.PurchaseDate
	ph.PurchaseDate = date
	ph.notify("purchase_date", old, date)
}

func (ph *PurchaseHistory) SetQuantity(quantity int) {
	old := ph.Quantity
	ph.Quantity = quantity
	ph.notify("quantity", old, quantity)
}

func (ph *PurchaseHistory) SetCost(cost float64) {
	old := ph.Cost
	ph.Cost = cost
	ph.notify("cost", old, cost)
}
