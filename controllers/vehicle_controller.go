package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Obsidian2612/quoting-system/models"
)

// VehicleController serves the vehicle catalog endpoints. Vehicle writes are
// deliberately left unauthenticated to match the existing API contract, even
// though every other catalog write requires a token.
type VehicleController struct {
	db *gorm.DB
}

// NewVehicleController creates a vehicle controller backed by the shared database handle
func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{db: db}
}

// CreateVehicleRequest represents the request body for creating a vehicle
type CreateVehicleRequest struct {
	Make   string  `json:"make"`
	Model  string  `json:"model"`
	Year   *int    `json:"year"`
	Engine *string `json:"engine"`
}

// UpdateVehicleRequest represents the request body for updating a vehicle;
// every field is optional
type UpdateVehicleRequest struct {
	Make   *string `json:"make"`
	Model  *string `json:"model"`
	Year   *int    `json:"year"`
	Engine *string `json:"engine"`
}

// List handles GET /api/vehicles
func (vc *VehicleController) List(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := vc.db.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vehicles"})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// Get handles GET /api/vehicles/:id - includes the vehicle's quotes
func (vc *VehicleController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	var vehicle models.Vehicle
	if err := vc.db.Preload("Quotes").First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vehicle"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// Create handles POST /api/vehicles
func (vc *VehicleController) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var errs []FieldError
	errs, req.Make = requireTrimmed(errs, "make", req.Make)
	errs, req.Model = requireTrimmed(errs, "model", req.Model)
	errs = validateYear(errs, req.Year, true)
	if req.Engine != nil {
		trimmed := strings.TrimSpace(*req.Engine)
		req.Engine = &trimmed
	}
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	vehicle := models.Vehicle{
		Make:   req.Make,
		Model:  req.Model,
		Year:   *req.Year,
		Engine: req.Engine,
	}

	if err := vc.db.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// Update handles PUT /api/vehicles/:id - only the provided fields change
func (vc *VehicleController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var errs []FieldError
	errs = validateYear(errs, req.Year, false)
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}

	updates := make(map[string]interface{})
	if req.Make != nil {
		updates["make"] = strings.TrimSpace(*req.Make)
	}
	if req.Model != nil {
		updates["model"] = strings.TrimSpace(*req.Model)
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Engine != nil {
		updates["engine"] = strings.TrimSpace(*req.Engine)
	}

	if len(updates) > 0 {
		if err := vc.db.Model(&vehicle).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
			return
		}
	}

	if err := vc.db.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// Delete handles DELETE /api/vehicles/:id. A vehicle referenced by existing
// quotes is kept and the delete rejected (restrict policy).
func (vc *VehicleController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	result := vc.db.Delete(&models.Vehicle{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			c.JSON(http.StatusConflict, gin.H{"error": "Vehicle is referenced by existing quotes"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// validateYear bounds the model year to 1900..current+1. The upper bound is
// dynamic (next model year vehicles are sold ahead of the calendar year).
func validateYear(errs []FieldError, year *int, required bool) []FieldError {
	maxYear := time.Now().Year() + 1
	if year == nil {
		if required {
			errs = append(errs, FieldError{Field: "year", Message: fmt.Sprintf("must be an integer between 1900 and %d", maxYear)})
		}
		return errs
	}
	if *year < 1900 || *year > maxYear {
		errs = append(errs, FieldError{Field: "year", Message: fmt.Sprintf("must be an integer between 1900 and %d", maxYear)})
	}
	return errs
}
