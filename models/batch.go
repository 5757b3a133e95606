package models

// Batch represents the batches table. ExpiryDate is a plain string,
// "YYYY-MM-DD" by convention.
type Batch struct {
	Observable `gorm:"-" json:"-"`

	BatchID         uint   `gorm:"primaryKey;column:batch_id" json:"batch_id"`
	ProductID       uint   `gorm:"column:product_id" json:"product_id"`
	ExpiryDate      string `gorm:"type:varchar(10);column:expiry_date" json:"expiry_date"`
	QuantityInBatch int    `gorm:"column:quantity_in_batch" json:"quantity_in_batch"`
}

// TableName specifies the table name for Batch
func (Batch) TableName() string {
	return "batches"
}

// SetBatchID records the store-generated id on the entity.
func (b *Batch) SetBatchID(id uint) {
	old := b.BatchID
	b.BatchID = id
	b.notify("batch_id", old, id)
}

func (b *Batch) SetProductID(id uint) {
	old := b.ProductID
	b.ProductID = id
	b.notify("product_id", old, id)
}

func (b *Batch) SetExpiryDate(date string) {
	old := b.ExpiryDate
	b.ExpiryDate = date
	b.notify("expiry_date", old, date)
}

func (b *Batch) SetQuantityInBatch(quantity int) {
	old := b.QuantityInBatch
	b.QuantityInBatch = quantity
	b.notify("quantity_in_batch", old, quantity)
}
