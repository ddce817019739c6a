package models

import "time"

// Quote is a persisted, priced bundle of services for one vehicle. Item
// prices are frozen copies taken at quote time; later catalog price changes
// never affect it. TotalPrice is always recomputed from the items on
// create/update, never edited independently.
type Quote struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	VehicleID  uint        `gorm:"not null;index" json:"vehicleId"`
	Vehicle    Vehicle     `gorm:"foreignKey:VehicleID" json:"vehicle"`
	Date       time.Time   `gorm:"not null;autoCreateTime" json:"date"`
	TotalPrice float64     `gorm:"not null" json:"totalPrice"`
	Items      []QuoteItem `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName specifies the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// QuoteItem is one service line on a quote, carrying the price snapshot
// agreed when the quote was written
type QuoteItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	QuoteID   uint    `gorm:"not null;index" json:"quoteId"`
	ServiceID uint    `gorm:"not null;index" json:"serviceId"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT" json:"service"`
	Price     float64 `gorm:"not null" json:"price"`
}

// TableName specifies the table name for the QuoteItem model
func (QuoteItem) TableName() string {
	return "quote_items"
}
