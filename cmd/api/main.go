package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cubo-pix-gateway/config"
	httpHandler "cubo-pix-gateway/internal/adapter/http/handler"
	"cubo-pix-gateway/internal/adapter/qrcode"
	"cubo-pix-gateway/internal/adapter/storage/memory"
	pgStorage "cubo-pix-gateway/internal/adapter/storage/postgres"
	redisStorage "cubo-pix-gateway/internal/adapter/storage/redis"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/internal/pix"
	"cubo-pix-gateway/internal/service"
	"cubo-pix-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("catalog", cfg.Catalog.Backend).
		Bool("redis", cfg.Redis.Enabled).
		Msg("Starting Cubo Pix Gateway")

	ctx := context.Background()

	// Pix encoder and QR renderer
	encoder := pix.NewEncoder(pix.Identity{
		Key:          cfg.Pix.Key,
		MerchantName: cfg.Pix.MerchantName,
		MerchantCity: cfg.Pix.MerchantCity,
	})
	if !encoder.Configured() {
		log.Warn().Msg("PIX_KEY not set, /api/pix/create will answer 400 until it is configured")
	}
	renderer, err := qrcode.NewRenderer(cfg.QR.Size, cfg.QR.Recovery)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid QR configuration")
	}

	var (
		productRepo    ports.ProductRepository
		auditRepo      ports.AuditRepository
		healthCheckers []ports.HealthChecker
	)

	// Catalog storage
	switch cfg.Catalog.Backend {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		if err := pgStorage.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply schema")
		}
		pgProducts := pgStorage.NewProductRepo(pool)
		seeded, err := pgProducts.SeedIfEmpty(ctx, memory.SeedCatalog())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed catalog")
		}
		if seeded > 0 {
			log.Info().Int("products", seeded).Msg("Seeded empty catalog")
		}

		productRepo = pgProducts
		auditRepo = pgStorage.NewAuditRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	case "memory", "":
		productRepo = memory.NewProductRepo(memory.SeedCatalog())
	default:
		log.Fatal().Str("backend", cfg.Catalog.Backend).Msg("Unknown catalog backend")
	}

	// Redis rate limiting (optional)
	var rateLimitStore ports.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize services
	pixSvc := service.NewPixService(encoder, pix.NewTxIDGenerator(cfg.Pix.TxIDPrefix), renderer, cfg.Pix.DefaultDescription, log)
	catalogSvc := service.NewCatalogService(productRepo, log)
	checkoutSvc := service.NewCheckoutService(catalogSvc, pixSvc, cfg.WhatsApp.Number, log)

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	if cfg.Admin.PasswordHash != "" && cfg.JWT.Secret == "" {
		log.Fatal().Msg("admin.password_hash is set but jwt.secret is empty")
	}
	authSvc := service.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, hashSvc, tokenSvc, log)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PixSvc:         pixSvc,
		CatalogSvc:     catalogSvc,
		CheckoutSvc:    checkoutSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		RateLimits:     cfg.RateLimit,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Port:           cfg.Server.Port,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	auditSvc.Wait()

	log.Info().Msg("Server exited")
}
