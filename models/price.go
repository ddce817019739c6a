package models

import "time"

// Price is one historical price observation for a service from a supplier.
// The history is append-only; "latest" means max(date), ties broken by the
// most recently inserted row.
type Price struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ServiceID  uint      `gorm:"not null;index" json:"serviceId"`
	SupplierID uint      `gorm:"not null;index" json:"supplierId"`
	Supplier   Supplier  `gorm:"foreignKey:SupplierID" json:"supplier"`
	Price      float64   `gorm:"not null" json:"price"`
	Date       time.Time `gorm:"not null;autoCreateTime" json:"date"`
}

// TableName specifies the table name for the Price model
func (Price) TableName() string {
	return "prices"
}
