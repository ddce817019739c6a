package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Obsidian2612/quoting-system/models"
)

func TestCreateSupplier(t *testing.T) {
	router, db, authHeader := newTestEnv(t)

	body := map[string]interface{}{"name": "AutoParts Inc", "contactInfo": "sales@autoparts.example"}

	w := doJSON(router, "POST", "/api/suppliers", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var count int64
	db.Model(&models.Supplier{}).Count(&count)
	assert.Equal(t, int64(0), count)

	w = doJSON(router, "POST", "/api/suppliers", body, authHeader)
	require.Equal(t, http.StatusCreated, w.Code)

	var supplier models.Supplier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &supplier))
	assert.Equal(t, "AutoParts Inc", supplier.Name)
	require.NotNil(t, supplier.ContactInfo)
	assert.Equal(t, "sales@autoparts.example", *supplier.ContactInfo)

	// contactInfo is optional
	w = doJSON(router, "POST", "/api/suppliers", map[string]interface{}{"name": "Discount Motors"}, authHeader)
	assert.Equal(t, http.StatusCreated, w.Code)

	// name is not
	w = doJSON(router, "POST", "/api/suppliers", map[string]interface{}{"name": "   "}, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAndGetSupplier(t *testing.T) {
	router, db, _ := newTestEnv(t)

	supplier := models.Supplier{Name: "AutoParts Inc"}
	require.NoError(t, db.Create(&supplier).Error)
	service := models.Service{Name: "Oil Change", Category: "Maintenance"}
	require.NoError(t, db.Create(&service).Error)
	price := models.Price{ServiceID: service.ID, SupplierID: supplier.ID, Price: 49.99}
	require.NoError(t, db.Create(&price).Error)

	w := doJSON(router, "GET", "/api/suppliers", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var suppliers []models.Supplier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suppliers))
	assert.Len(t, suppliers, 1)

	w = doJSON(router, "GET", fmt.Sprintf("/api/suppliers/%d", supplier.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail models.Supplier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Len(t, detail.Prices, 1)

	w = doJSON(router, "GET", "/api/suppliers/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSupplier(t *testing.T) {
	router, db, authHeader := newTestEnv(t)

	supplier := models.Supplier{Name: "AutoParts Inc"}
	require.NoError(t, db.Create(&supplier).Error)

	w := doJSON(router, "PUT", fmt.Sprintf("/api/suppliers/%d", supplier.ID), map[string]interface{}{"contactInfo": "+44 20 7946 0000"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, "PUT", fmt.Sprintf("/api/suppliers/%d", supplier.ID), map[string]interface{}{"contactInfo": "+44 20 7946 0000"}, authHeader)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Supplier
	require.NoError(t, db.First(&updated, supplier.ID).Error)
	assert.Equal(t, "AutoParts Inc", updated.Name)
	require.NotNil(t, updated.ContactInfo)
	assert.Equal(t, "+44 20 7946 0000", *updated.ContactInfo)

	w = doJSON(router, "PUT", "/api/suppliers/999", map[string]interface{}{"name": "Ghost"}, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSupplier(t *testing.T) {
	router, db, authHeader := newTestEnv(t)

	unused := models.Supplier{Name: "Unused Supplier"}
	require.NoError(t, db.Create(&unused).Error)

	w := doJSON(router, "DELETE", fmt.Sprintf("/api/suppliers/%d", unused.ID), nil, authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// A supplier with price history is kept
	referenced := models.Supplier{Name: "AutoParts Inc"}
	require.NoError(t, db.Create(&referenced).Error)
	service := models.Service{Name: "Oil Change", Category: "Maintenance"}
	require.NoError(t, db.Create(&service).Error)
	price := models.Price{ServiceID: service.ID, SupplierID: referenced.ID, Price: 49.99}
	require.NoError(t, db.Create(&price).Error)

	w = doJSON(router, "DELETE", fmt.Sprintf("/api/suppliers/%d", referenced.ID), nil, authHeader)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.Supplier{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
