package models

// Supplier represents the suppliers table
type Supplier struct {
	Observable `gorm:"-" json:"-"`

	SupplierID  uint   `gorm:"primaryKey;column:supplier_id" json:"supplier_id"`
	Name        string `gorm:"type:varchar(200);not null;column:name" json:"name"`
	ContactInfo string `gorm:"type:varchar(200);column:contact_info" json:"contact_info"`
	Address     string `gorm:"type:text;column:address" json:"address"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "suppliers"
}

func (s *Supplier) SetSupplierID(id uint) {
	old := s.SupplierID
	s.SupplierID = id
	s.notify("supplier_id", old, id)
}

func (s *Supplier) SetName(name string) {
	old := s.Name
	s.Name = name
	s.notify("name", old, name)
}

func (s *Supplier) SetContactInfo(contactInfo string) {
	old := s.ContactInfo
	s.ContactInfo = contactInfo
	s.notify("contact_info", old, contactInfo)
}

func (s *Supplier) SetAddress(address string) {
	old := s.Address
	s.Address = address
	s.notify("address", old, address)
}
