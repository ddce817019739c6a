package models

// Supplier represents a parts/labor supplier that sources service prices
type Supplier struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	ContactInfo *string `json:"contactInfo"` // nullable
	Prices      []Price `gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT" json:"prices,omitempty"`
}

// TableName specifies the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
