package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Obsidian2612/quoting-system/config"
	"github.com/Obsidian2612/quoting-system/middleware"
	"github.com/Obsidian2612/quoting-system/services"
	"github.com/Obsidian2612/quoting-system/tests/testutil"
)

// setupTestRouter wires the controllers onto the same route table the server
// uses, against a test database
func setupTestRouter(db *gorm.DB, cfg *config.Config, llm services.LLMClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	vehicleController := NewVehicleController(db)
	serviceController := NewServiceController(db)
	supplierController := NewSupplierController(db)
	quoteController := NewQuoteController(db)
	adminController := NewAdminController(db, cfg, llm)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	api := router.Group("/api")
	{
		api.GET("/vehicles", vehicleController.List)
		api.GET("/vehicles/:id", vehicleController.Get)
		api.POST("/vehicles", vehicleController.Create)
		api.PUT("/vehicles/:id", vehicleController.Update)
		api.DELETE("/vehicles/:id", vehicleController.Delete)

		api.GET("/services", serviceController.List)
		api.GET("/services/:id", serviceController.Get)
		api.POST("/services", requireAuth, serviceController.Create)
		api.POST("/services/:id/prices", requireAuth, serviceController.AddPrice)
		api.DELETE("/services/:id", requireAuth, serviceController.Delete)

		api.GET("/suppliers", supplierController.List)
		api.GET("/suppliers/:id", supplierController.Get)
		api.POST("/suppliers", requireAuth, supplierController.Create)
		api.PUT("/suppliers/:id", requireAuth, supplierController.Update)
		api.DELETE("/suppliers/:id", requireAuth, supplierController.Delete)

		api.GET("/quotes", requireAuth, quoteController.List)
		api.GET("/quotes/:id", requireAuth, quoteController.Get)
		api.POST("/quotes", requireAuth, quoteController.Create)
		api.PUT("/quotes/:id", requireAuth, quoteController.Update)
		api.DELETE("/quotes/:id", requireAuth, quoteController.Delete)

		api.POST("/admin/login", adminController.Login)
		api.POST("/admin", requireAuth, adminController.CreateAdmin)
		api.GET("/admin/settings", requireAuth, adminController.GetSettings)
		api.POST("/admin/settings", requireAuth, adminController.UpdateSettings)
		api.POST("/admin/llm/proxy", requireAuth, adminController.ProxyLLM)
	}

	return router
}

// newTestEnv builds a router, database and valid auth header for a test
func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.TestConfig()
	router := setupTestRouter(db, cfg, services.NewMockLLMClient(nil, ""))

	admin := testutil.CreateTestAdmin(t, db, "admin", "secret-pass")
	return router, db, testutil.BearerToken(t, admin)
}

// doJSON performs a JSON request against the router and returns the recorder
func doJSON(router *gin.Engine, method, path string, body interface{}, authHeader string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
