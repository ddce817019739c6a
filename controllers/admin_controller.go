package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Obsidian2612/quoting-system/config"
	"github.com/Obsidian2612/quoting-system/middleware"
	"github.com/Obsidian2612/quoting-system/models"
	"github.com/Obsidian2612/quoting-system/services"
)

// AdminController serves login, admin provisioning, the settings panel and
// the LLM forwarding proxy
type AdminController struct {
	db  *gorm.DB
	cfg *config.Config
	llm services.LLMClient
}

// NewAdminController creates an admin controller backed by the shared
// database handle and the injected LLM client
func NewAdminController(db *gorm.DB, cfg *config.Config, llm services.LLMClient) *AdminController {
	return &AdminController{db: db, cfg: cfg, llm: llm}
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateAdminRequest represents the request body for creating an admin account
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateSettingsRequest represents the request body for the settings panel;
// both fields are optional and only provided ones are written
type UpdateSettingsRequest struct {
	LLMURL     *string `json:"llmUrl"`
	LLMEnabled *bool   `json:"llmEnabled"`
}

// Login handles POST /api/admin/login. Unknown username and wrong password
// produce the identical error surface so the response never leaks which
// check failed.
func (ac *AdminController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var errs []FieldError
	if req.Username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "must not be empty"})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "must not be empty"})
	}
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	var admin models.Admin
	if err := ac.db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.SignToken(ac.cfg.JWTSecret, admin.ID, admin.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CreateAdmin handles POST /api/admin - creating an admin requires an
// existing admin's token
func (ac *AdminController) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var errs []FieldError
	if strings.TrimSpace(req.Username) == "" {
		errs = append(errs, FieldError{Field: "username", Message: "must not be empty"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "must be at least 6 characters"})
	}
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	var existing models.Admin
	err := ac.db.Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
		return
	}

	admin := models.Admin{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := ac.db.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
	})
}

// GetSettings handles GET /api/admin/settings
func (ac *AdminController) GetSettings(c *gin.Context) {
	var settings []models.Setting
	if err := ac.db.Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}

	c.JSON(http.StatusOK, gin.H{
		"llmUrl":     values[models.SettingLLMURL],
		"llmEnabled": values[models.SettingLLMEnabled] == "true",
	})
}

// UpdateSettings handles POST /api/admin/settings. When OLLAMA_URL is set in
// the environment it overrides whatever URL the client supplies.
func (ac *AdminController) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.LLMURL != nil || ac.cfg.OllamaURL != "" {
		effectiveURL := ac.cfg.OllamaURL
		if effectiveURL == "" {
			effectiveURL = *req.LLMURL
		}
		if err := ac.upsertSetting(models.SettingLLMURL, effectiveURL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
	}

	if req.LLMEnabled != nil {
		value := "false"
		if *req.LLMEnabled {
			value = "true"
		}
		if err := ac.upsertSetting(models.SettingLLMEnabled, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ProxyLLM handles POST /api/admin/llm/proxy. The entire request body is
// forwarded unmodified to the configured URL and the upstream response is
// relayed back verbatim, keeping the JSON vs plain-text distinction.
func (ac *AdminController) ProxyLLM(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var payload struct {
		Prompt string `json:"prompt"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing prompt"})
		return
	}

	var urlSetting, enabledSetting models.Setting
	urlErr := ac.db.Where("key = ?", models.SettingLLMURL).First(&urlSetting).Error
	enabledErr := ac.db.Where("key = ?", models.SettingLLMEnabled).First(&enabledSetting).Error
	if urlErr != nil || enabledErr != nil || enabledSetting.Value != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "LLM not configured or disabled"})
		return
	}

	data, contentType, err := ac.llm.Forward(urlSetting.Value, body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "LLM proxy failed"})
		return
	}

	if strings.Contains(contentType, "application/json") {
		c.Data(http.StatusOK, "application/json", data)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}

// upsertSetting writes a key/value pair, replacing the value when the key exists
func (ac *AdminController) upsertSetting(key, value string) error {
	return ac.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}
