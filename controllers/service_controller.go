package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Obsidian2612/quoting-system/models"
)

// ServiceController serves the service catalog endpoints, including the
// append-only per-service price history
type ServiceController struct {
	db *gorm.DB
}

// NewServiceController creates a service controller backed by the shared database handle
func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{db: db}
}

// CreateServiceRequest represents the request body for creating a service
// together with its first supplier price
type CreateServiceRequest struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Price      *float64 `json:"price"`
	SupplierID *uint    `json:"supplierId"`
}

// AddPriceRequest represents the request body for appending a price entry
type AddPriceRequest struct {
	Price      *float64 `json:"price"`
	SupplierID *uint    `json:"supplierId"`
}

// priceHistoryOrder sorts price rows newest-first; ties on date go to the
// most recently inserted row
func priceHistoryOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("date DESC, id DESC")
}

// List handles GET /api/services - each service carries only its latest
// price (with supplier)
func (sc *ServiceController) List(c *gin.Context) {
	var services []models.Service
	if err := sc.db.Preload("Prices", priceHistoryOrder).Preload("Prices.Supplier").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	// Trim the preloaded history down to the single latest observation
	for i := range services {
		if len(services[i].Prices) > 1 {
			services[i].Prices = services[i].Prices[:1]
		}
	}
	c.JSON(http.StatusOK, services)
}

// Get handles GET /api/services/:id - full price history, newest first
func (sc *ServiceController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	var service models.Service
	if err := sc.db.Preload("Prices", priceHistoryOrder).Preload("Prices.Supplier").First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service"})
		return
	}
	c.JSON(http.StatusOK, service)
}

// Create handles POST /api/services - creates the service and its first
// price row as one transaction
func (sc *ServiceController) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var errs []FieldError
	errs, req.Name = requireTrimmed(errs, "name", req.Name)
	errs, req.Category = requireTrimmed(errs, "category", req.Category)
	if req.Price == nil || *req.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "must be a number greater than or equal to 0"})
	}
	if req.SupplierID == nil {
		errs = append(errs, FieldError{Field: "supplierId", Message: "must be an integer"})
	}
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	service := models.Service{
		Name:     req.Name,
		Category: req.Category,
		Prices: []models.Price{
			{Price: *req.Price, SupplierID: *req.SupplierID},
		},
	}

	if err := sc.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	if err := sc.db.Preload("Prices", priceHistoryOrder).Preload("Prices.Supplier").First(&service, service.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, service)
}

// AddPrice handles POST /api/services/:id/prices - appends a new price
// observation to the service's history
func (sc *ServiceController) AddPrice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	var req AddPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var errs []FieldError
	if req.Price == nil || *req.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "must be a number greater than or equal to 0"})
	}
	if req.SupplierID == nil {
		errs = append(errs, FieldError{Field: "supplierId", Message: "must be an integer"})
	}
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	price := models.Price{
		ServiceID:  uint(id),
		SupplierID: *req.SupplierID,
		Price:      *req.Price,
	}

	if err := sc.db.Create(&price).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service price"})
		return
	}

	if err := sc.db.Preload("Supplier").First(&price, price.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service price"})
		return
	}
	c.JSON(http.StatusCreated, price)
}

// Delete handles DELETE /api/services/:id. Its price history cascades away
// with it; a service referenced by existing quote items is kept and the
// delete rejected (restrict policy).
func (sc *ServiceController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	result := sc.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			c.JSON(http.StatusConflict, gin.H{"error": "Service is referenced by existing quotes"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
