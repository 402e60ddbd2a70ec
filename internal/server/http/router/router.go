package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/config"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/server/http/handlers"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/server/http/middleware"
)

func newEngine(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// X-Forwarded-For is honoured only from configured proxies.
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("invalid trusted proxies, ignoring forwarded headers", slog.String("error", err.Error()))
		_ = engine.SetTrustedProxies(nil)
	}

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	return engine
}

// SetupUser configures routes of the user service.
func SetupUser(facade handlers.UserFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	engine := newEngine(cfg, logger)

	healthHandler := handlers.NewHealthHandler(cfg.ServiceName, facade, logger)
	authHandler := handlers.NewAuthHandler(facade, logger)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateBurst)

	engine.GET("/healthz", healthHandler.Healthz)
	engine.GET("/readyz", healthHandler.Readyz)
	engine.POST("/register", authHandler.Register)
	engine.POST("/login", middleware.RateLimit(loginLimiter), authHandler.Login)

	authorized := engine.Group("")
	authorized.Use(middleware.AuthRequired(facade))
	authorized.GET("/profile", authHandler.Profile)

	return engine
}

// SetupOrder configures routes of the order service.
func SetupOrder(facade handlers.OrderFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	engine := newEngine(cfg, logger)

	healthHandler := handlers.NewHealthHandler(cfg.ServiceName, facade, logger)
	productHandler := handlers.NewProductHandler(facade, logger)

	engine.GET("/healthz", healthHandler.Healthz)
	engine.GET("/readyz", healthHandler.Readyz)
	engine.GET("/products", productHandler.List)
	engine.GET("/products/:id", productHandler.Get)

	return engine
}
