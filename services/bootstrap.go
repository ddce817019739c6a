package services

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Obsidian2612/quoting-system/config"
	"github.com/Obsidian2612/quoting-system/models"
)

// EnsureBootstrapAdmin provisions the first admin account from configuration.
// It does nothing unless both ADMIN_USERNAME and ADMIN_PASSWORD are set, and
// never overwrites an existing account. The password length is already
// checked by config.Validate, so an undersized bootstrap password fails
// startup instead of creating a weak account.
func EnsureBootstrapAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	var existing models.Admin
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		log.Printf("Admin user %q already exists (id=%d)", existing.Username, existing.ID)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	admin := models.Admin{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	log.Printf("Created bootstrap admin %q (id=%d)", admin.Username, admin.ID)
	return nil
}
