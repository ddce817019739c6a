package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// FieldError describes one failing field in a 400 response. Validation
// enumerates every failing field before returning, so a bad request is
// reported in full rather than one field at a time.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationFailed writes the structured 400 response for field errors
func validationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// requireTrimmed trims a string field and records an error when it is empty
func requireTrimmed(errs []FieldError, field, value string) ([]FieldError, string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs = append(errs, FieldError{Field: field, Message: "must not be empty"})
	}
	return errs, trimmed
}

// isForeignKeyViolation reports whether a storage error is a foreign-key
// constraint failure (works with both PostgreSQL and SQLite)
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
