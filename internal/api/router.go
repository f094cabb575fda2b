package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopsmith/ecommerce-api/internal/api/handler"
	"github.com/shopsmith/ecommerce-api/internal/api/middleware"
	"github.com/shopsmith/ecommerce-api/internal/core/domain"
	"github.com/shopsmith/ecommerce-api/internal/core/ports"
	"github.com/shopsmith/ecommerce-api/internal/core/service"
	"github.com/shopsmith/ecommerce-api/internal/core/token"
	"github.com/shopsmith/ecommerce-api/internal/infrastructure/config"
	mongodb "github.com/shopsmith/ecommerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shopsmith/ecommerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is constructed by the caller so its workers share the
// process lifecycle.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ecommerce"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	products := mongodb.NewProductRepository(db)
	categories := mongodb.NewCategoryRepository(db)
	cache := redisdb.NewCatalogCache(rdb)

	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(users, codec, audit, log)
	productService := service.NewProductService(products, cache, audit, log)
	categoryService := service.NewCategoryService(categories, products, audit, log)

	authHandler := handler.NewAuthHandler(authService, codec.TTL(), cfg.Production())
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	requireSession := middleware.RequireSession(codec, users)
	optionalSession := middleware.OptionalSession(codec, users)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, requireSession)

	// --- Product routes ---
	e.GET("/products", productHandler.List, optionalSession)
	e.GET("/products/mine", productHandler.Mine, requireSession)
	e.GET("/products/:id", productHandler.Get, optionalSession)
	e.POST("/products", productHandler.Create, requireSession)
	e.PUT("/products/:id", productHandler.Update, requireSession)
	e.DELETE("/products/:id", productHandler.Delete, requireSession)

	// --- Category routes (mutations admin-only) ---
	e.GET("/categories", categoryHandler.List, optionalSession)
	e.GET("/categories/:id/products", categoryHandler.Products, optionalSession)
	e.POST("/categories", categoryHandler.Create, requireSession, requireAdmin)
	e.PUT("/categories/:id", categoryHandler.Update, requireSession, requireAdmin)
	e.DELETE("/categories/:id", categoryHandler.Delete, requireSession, requireAdmin)

	// --- Ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
