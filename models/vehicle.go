package models

// Vehicle represents a customer vehicle that quotes are written against
type Vehicle struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Make   string  `gorm:"not null" json:"make"`
	Model  string  `gorm:"not null" json:"model"`
	Year   int     `gorm:"not null" json:"year"` // bounded to 1900..current+1 at the API layer
	Engine *string `json:"engine"`               // nullable, free-form engine description
	Quotes []Quote `gorm:"foreignKey:VehicleID;constraint:OnDelete:RESTRICT" json:"quotes,omitempty"`
}

// TableName specifies the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
