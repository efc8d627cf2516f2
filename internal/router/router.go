// internal/router/router.go
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MRafay620/ecommerce-api/internal/config"
	"github.com/MRafay620/ecommerce-api/internal/handlers"
	"github.com/MRafay620/ecommerce-api/internal/middleware"
	"github.com/MRafay620/ecommerce-api/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(db)
	inventoryService := services.NewInventoryService(db)
	salesService := services.NewSalesService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	productHandler := handlers.NewProductHandler(catalogService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	salesHandler := handlers.NewSalesHandler(salesService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: false,
	}))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", handlers.HealthCheck)

	// Categories
	categories := r.Group("/categories")
	{
		categories.POST("", categoryHandler.CreateCategory)
		categories.GET("", categoryHandler.ListCategories)
	}

	// Products
	products := r.Group("/products")
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	// Inventory
	inventory := r.Group("/inventory")
	{
		inventory.GET("", inventoryHandler.ListInventory)
		inventory.PUT("/:product_id", inventoryHandler.UpdateInventory)
	}

	// Sales
	sales := r.Group("/sales")
	{
		sales.POST("", salesHandler.CreateSale)
		sales.GET("", salesHandler.ListSales)
	}

	// Analytics
	analytics := r.Group("/analytics")
	{
		analytics.GET("/revenue/:period", analyticsHandler.GetRevenue)
	}

	return r
}
