package handler

import (
	"cubo-pix-gateway/config"
	"cubo-pix-gateway/internal/adapter/http/middleware"
	"cubo-pix-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PixSvc         ports.PixService
	CatalogSvc     ports.CatalogService
	CheckoutSvc    ports.CheckoutService
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	RateLimits     config.RateLimitConfig
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	AllowedOrigins []string
	Port           int
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(deps.AllowedOrigins))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.NoRoute(NotFound)

	// Health check (deep — verifies PostgreSQL + Redis when enabled)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules(deps.RateLimits)

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	api := r.Group("/api")
	api.GET("/ping", Ping(deps.Port))

	pixHandler := NewPixHandler(deps.PixSvc)
	pix := api.Group("/pix")
	{
		pix.POST("/create", rl(middleware.GroupPixCreate), pixHandler.Create)
		pix.POST("/verify", pixHandler.Verify)
	}

	catalogHandler := NewCatalogHandler(deps.CatalogSvc)
	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)
	api.GET("/tags", catalogHandler.Tags)

	checkoutHandler := NewCheckoutHandler(deps.CheckoutSvc)
	api.POST("/checkout", rl(middleware.GroupCheckout), checkoutHandler.Checkout)

	// --- Admin (login is public, writes need a JWT) ---
	adminHandler := NewAdminHandler(deps.AuthSvc, deps.CatalogSvc)
	admin := api.Group("/admin")
	admin.POST("/login", rl(middleware.GroupAdminLogin), adminHandler.Login)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	products := admin.Group("/products", jwtAuth)
	{
		products.PUT("/:id", adminHandler.UpsertProduct)
		products.DELETE("/:id", adminHandler.DeleteProduct)
	}

	return r
}
