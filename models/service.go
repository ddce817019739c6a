package models

// Service represents one kind of vehicle-service work offered in the catalog.
// Name+category are not required to be unique; the price history hangs off it.
type Service struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Category string  `gorm:"not null" json:"category"`
	Prices   []Price `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"prices,omitempty"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
