package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Obsidian2612/quoting-system/models"
)

// QuoteController serves the quote endpoints. Item prices are client-supplied
// snapshots, deliberately never re-derived from the current catalog, and the
// total is always the arithmetic sum of the items.
type QuoteController struct {
	db *gorm.DB
}

// NewQuoteController creates a quote controller backed by the shared database handle
func NewQuoteController(db *gorm.DB) *QuoteController {
	return &QuoteController{db: db}
}

// QuoteItemRequest is one service line in a quote create/update body
type QuoteItemRequest struct {
	ServiceID *uint    `json:"serviceId"`
	Price     *float64 `json:"price"`
}

// CreateQuoteRequest represents the request body for creating a quote
type CreateQuoteRequest struct {
	VehicleID *uint              `json:"vehicleId"`
	Items     []QuoteItemRequest `json:"items"`
}

// UpdateQuoteRequest represents the request body for replacing a quote's items
type UpdateQuoteRequest struct {
	Items []QuoteItemRequest `json:"items"`
}

// List handles GET /api/quotes - vehicle and per-item service detail joined in
func (qc *QuoteController) List(c *gin.Context) {
	var quotes []models.Quote
	if err := qc.db.Preload("Vehicle").Preload("Items.Service").Find(&quotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quotes"})
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// Get handles GET /api/quotes/:id
func (qc *QuoteController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}

	var quote models.Quote
	if err := qc.db.Preload("Vehicle").Preload("Items.Service").First(&quote, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quote"})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Create handles POST /api/quotes - persists the quote and its items as one
// transaction so a crash can never leave a quote without its items
func (qc *QuoteController) Create(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var errs []FieldError
	if req.VehicleID == nil {
		errs = append(errs, FieldError{Field: "vehicleId", Message: "must be an integer"})
	}
	errs = validateQuoteItems(errs, req.Items)
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	quote := models.Quote{
		VehicleID:  *req.VehicleID,
		TotalPrice: sumItemPrices(req.Items),
	}
	for _, item := range req.Items {
		quote.Items = append(quote.Items, models.QuoteItem{
			ServiceID: *item.ServiceID,
			Price:     *item.Price,
		})
	}

	if err := qc.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&quote).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quote"})
		return
	}

	if err := qc.db.Preload("Vehicle").Preload("Items.Service").First(&quote, quote.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quote"})
		return
	}
	c.JSON(http.StatusCreated, quote)
}

// Update handles PUT /api/quotes/:id - wholesale replacement of the item set
// and a recompute of the total, in a single transaction. Not a merge.
func (qc *QuoteController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}

	var req UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var errs []FieldError
	errs = validateQuoteItems(errs, req.Items)
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	var quote models.Quote
	if err := qc.db.First(&quote, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote"})
		return
	}

	if err := qc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", quote.ID).Delete(&models.QuoteItem{}).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			quoteItem := models.QuoteItem{
				QuoteID:   quote.ID,
				ServiceID: *item.ServiceID,
				Price:     *item.Price,
			}
			if err := tx.Create(&quoteItem).Error; err != nil {
				return err
			}
		}
		return tx.Model(&quote).Update("total_price", sumItemPrices(req.Items)).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote"})
		return
	}

	if err := qc.db.Preload("Vehicle").Preload("Items.Service").First(&quote, quote.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote"})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Delete handles DELETE /api/quotes/:id - hard delete, items cascade away
func (qc *QuoteController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}

	result := qc.db.Delete(&models.Quote{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quote"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// validateQuoteItems checks the item list: non-empty, each with an integer
// serviceId and a price >= 0
func validateQuoteItems(errs []FieldError, items []QuoteItemRequest) []FieldError {
	if len(items) == 0 {
		errs = append(errs, FieldError{Field: "items", Message: "must be a non-empty array"})
		return errs
	}
	for i, item := range items {
		if item.ServiceID == nil {
			errs = append(errs, FieldError{Field: "items[" + strconv.Itoa(i) + "].serviceId", Message: "must be an integer"})
		}
		if item.Price == nil || *item.Price < 0 {
			errs = append(errs, FieldError{Field: "items[" + strconv.Itoa(i) + "].price", Message: "must be a number greater than or equal to 0"})
		}
	}
	return errs
}

// sumItemPrices computes the quote total as the arithmetic sum of the
// client-supplied item prices
func sumItemPrices(items []QuoteItemRequest) float64 {
	var total float64
	for _, item := range items {
		total += *item.Price
	}
	return total
}
