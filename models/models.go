package models

// AllModels returns all model structs in dependency order. The
// production schema is assumed pre-existing; test fixtures use this
// list to build an equivalent schema in-memory.
func AllModels() []interface{} {
	return []interface{}{
		&Category{},
		&Supplier{},
		&Product{},
		&Batch{},
		&PurchaseHistory{},
		&SupplierProductLinkage{},
	}
}
