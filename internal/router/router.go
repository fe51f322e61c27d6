package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "productmgmt/docs"
	"productmgmt/internal/config"
	"productmgmt/internal/handler"
	"productmgmt/internal/infra"
	"productmgmt/internal/middleware"
	"productmgmt/internal/model"
	"productmgmt/internal/repository"
	"productmgmt/internal/service"
)

const rateLimitWindow = time.Minute

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Gateway ← DB
//
// A nil db selects the in-memory store; a nil rdb keeps rate limiting in
// process. ctx bounds background work started here.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ── Gateways ─────────────────────────────────────────────────────────────
	var (
		products   repository.Gateway[model.Product]
		categories repository.Gateway[model.Category]
	)
	if db != nil {
		products = repository.NewGormGateway[model.Product](repository.OrderByPrice)
		categories = repository.NewGormGateway[model.Category](repository.OrderByName)
	} else {
		products, categories = repository.NewMemoryStore()
	}

	// ── Services & handlers ──────────────────────────────────────────────────
	productSvc := service.NewProductService(products, categories)
	productsH := handler.NewProductsHandler(productSvc, service.NewProductValidator())
	categoriesH := handler.NewCategoriesHandler(categories)

	// ── Rate limiting ────────────────────────────────────────────────────────
	var (
		limiter middleware.Limiter
		breaker *infra.CircuitBreaker
	)
	if cfg.RateLimitPerMinute > 0 {
		local := middleware.NewMemoryLimiter(cfg.RateLimitPerMinute, rateLimitWindow)
		go local.Run(ctx, 5*time.Minute)
		limiter = local
		if rdb != nil {
			breaker = infra.NewCircuitBreaker(infra.DefaultCBConfig("redis-rate-limiter"))
			limiter = middleware.NewFallbackLimiter(
				middleware.NewRedisLimiter(rdb, cfg.RateLimitPerMinute, rateLimitWindow),
				local,
				breaker,
			)
		}
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb, breaker))

	api := r.Group("/")
	if limiter != nil {
		api.Use(middleware.RateLimit(limiter))
	}
	api.Use(middleware.UnitOfWork(db))

	prods := api.Group("/products")
	{
		prods.GET("/", productsH.List)
		prods.POST("/", productsH.Create)
		prods.GET("/:id", productsH.Get)
		prods.PUT("/:id", productsH.Update)
		prods.DELETE("/:id", productsH.Delete)
	}

	cats := api.Group("/categories")
	{
		cats.GET("/", categoriesH.List)
		cats.POST("/", categoriesH.Create)
		cats.GET("/:id", categoriesH.Get)
		cats.PUT("/:id", categoriesH.Update)
		cats.DELETE("/:id", categoriesH.Delete)
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
