package testutil

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Obsidian2612/quoting-system/middleware"
	"github.com/Obsidian2612/quoting-system/models"
)

// CreateTestAdmin inserts an admin with a bcrypt-hashed password
func CreateTestAdmin(t *testing.T, db *gorm.DB, username, password string) models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	admin := models.Admin{Username: username, PasswordHash: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
	return admin
}

// BearerToken issues a valid token for an admin, ready for an Authorization header
func BearerToken(t *testing.T, admin models.Admin) string {
	t.Helper()

	token, err := middleware.SignToken(TestJWTSecret, admin.ID, admin.Username)
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return "Bearer " + token
}
