package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Obsidian2612/quoting-system/config"
	"github.com/Obsidian2612/quoting-system/controllers"
	"github.com/Obsidian2612/quoting-system/middleware"
	"github.com/Obsidian2612/quoting-system/models"
	"github.com/Obsidian2612/quoting-system/services"
)

func main() {
	// Basic logging
	log.Println("Starting Vehicle Quoting API server...")

	// Load configuration; refuses to start without a signing secret
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database; the handle is shared by every controller
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	if err := db.AutoMigrate(
		&models.Vehicle{},
		&models.Supplier{},
		&models.Service{},
		&models.Price{},
		&models.Quote{},
		&models.QuoteItem{},
		&models.Admin{},
		&models.Setting{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// First-run admin provisioning from environment
	if err := services.EnsureBootstrapAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to bootstrap admin: %v", err)
	}

	router := setupRouter(db, cfg, services.NewLLMClient())

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server is running on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Block until a shutdown signal, then drain requests and close the DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := config.CloseDatabase(db); err != nil {
		log.Printf("Database close error: %v", err)
	}
	log.Println("Server stopped")
}

// setupRouter wires every controller onto the /api route table. Reads on the
// catalog are public; writes require a token, except vehicle writes which the
// existing API contract leaves open.
func setupRouter(db *gorm.DB, cfg *config.Config, llm services.LLMClient) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	vehicleController := controllers.NewVehicleController(db)
	serviceController := controllers.NewServiceController(db)
	supplierController := controllers.NewSupplierController(db)
	quoteController := controllers.NewQuoteController(db)
	adminController := controllers.NewAdminController(db, cfg, llm)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)

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

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vehicle Quoting API is running",
	})
}
