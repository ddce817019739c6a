package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Obsidian2612/quoting-system/models"
)

// SupplierController serves the supplier catalog endpoints
type SupplierController struct {
	db *gorm.DB
}

// NewSupplierController creates a supplier controller backed by the shared database handle
func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{db: db}
}

// CreateSupplierRequest represents the request body for creating a supplier
type CreateSupplierRequest struct {
	Name        string  `json:"name"`
	ContactInfo *string `json:"contactInfo"`
}

// UpdateSupplierRequest represents the request body for updating a supplier;
// every field is optional
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactInfo *string `json:"contactInfo"`
}

// List handles GET /api/suppliers
func (sc *SupplierController) List(c *gin.Context) {
	var suppliers []models.Supplier
	if err := sc.db.Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suppliers"})
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// Get handles GET /api/suppliers/:id - includes the supplier's price rows
func (sc *SupplierController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	var supplier models.Supplier
	if err := sc.db.Preload("Prices").First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch supplier"})
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// Create handles POST /api/suppliers
func (sc *SupplierController) Create(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var errs []FieldError
	errs, req.Name = requireTrimmed(errs, "name", req.Name)
	if req.ContactInfo != nil {
		trimmed := strings.TrimSpace(*req.ContactInfo)
		req.ContactInfo = &trimmed
	}
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	supplier := models.Supplier{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	}

	if err := sc.db.Create(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// Update handles PUT /api/suppliers/:id - only the provided fields change
func (sc *SupplierController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	var req UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var supplier models.Supplier
	if err := sc.db.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.ContactInfo != nil {
		updates["contact_info"] = strings.TrimSpace(*req.ContactInfo)
	}

	if len(updates) > 0 {
		if err := sc.db.Model(&supplier).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
			return
		}
	}

	if err := sc.db.First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// Delete handles DELETE /api/suppliers/:id. A supplier with price history is
// kept and the delete rejected (restrict policy).
func (sc *SupplierController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	result := sc.db.Delete(&models.Supplier{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			c.JSON(http.StatusConflict, gin.H{"error": "Supplier is referenced by existing prices"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
