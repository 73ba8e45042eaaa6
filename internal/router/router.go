package router

import (
	"time"

	"shopstock/internal/config"
	"shopstock/internal/handler"
	"shopstock/internal/middleware"
	"shopstock/internal/repository"
	"shopstock/internal/service"
	"shopstock/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	inventoryLogRepo := repository.NewInventoryLogRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo, inventoryRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo, inventoryLogRepo)
	saleSvc := service.NewSaleService(saleRepo, inventorySvc, inventoryRepo, productRepo, dispatcher)
	revenueSvc := service.NewRevenueService(saleRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc, cfg.LowStockThreshold)
	salesH := handler.NewSalesHandler(saleSvc)
	revenueH := handler.NewRevenueHandler(revenueSvc, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.POST("", categoriesH.Create)
			categories.GET("", categoriesH.List)
			categories.GET("/:id", categoriesH.Get)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.Get)
			products.DELETE("/:id", productsH.Delete)
			products.POST("/:id/sales", salesH.CreateSale)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.POST("", inventoryH.Create)
			inventory.GET("", inventoryH.List)
			inventory.GET("/low-stock", inventoryH.LowStock)
			inventory.GET("/logs", inventoryH.Logs)
			inventory.GET("/:id", inventoryH.Get)
			inventory.PATCH("/:id/stock", inventoryH.AdjustStock)
		}

		sales := v1.Group("/sales")
		{
			sales.GET("", salesH.ListSales)
			sales.GET("/:id", salesH.GetSale)
		}

		revenue := v1.Group("/revenue")
		{
			revenue.GET("/summary", revenueH.Summary)
			revenue.GET("/comparison", revenueH.Comparison)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
