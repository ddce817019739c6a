package models

// Admin represents an operator account for the protected catalog/quote surface
type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"` // never serialized
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}
