package api

import (
	"context"
	"net/http"
	"time"

	"pairing-generator/internal/api/handlers/health"
	pairingHandler "pairing-generator/internal/api/handlers/pairing"
	"pairing-generator/internal/api/middleware"
	"pairing-generator/internal/core/ai/gemini"
	"pairing-generator/internal/core/pairing"
	"pairing-generator/internal/infrastructure/config"
	"pairing-generator/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// generous enough for the whole model fallback chain
	timeoutDuration = 60 * time.Second
	// request body limit (the API is query-driven, bodies stay tiny)
	maxBodySize = 1 << 20
)

// SetupRouter wires middleware, services and routes.
func SetupRouter(cfg *config.Config, store pairing.Store, cacheStats health.StatsProvider) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Strings("models", cfg.Gemini.Models),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// per-request deadline so a stalled upstream cannot hold the
	// connection forever
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": common.ErrRequestTimeout.Message,
				"code":  common.ErrCodeRequestTimeout,
			})
		}
	})

	geminiClient := gemini.NewClient(cfg)
	recommendSvc := pairing.NewService(cfg, geminiClient, store)
	handler := pairingHandler.NewHandler(recommendSvc)

	router.GET("/health", health.HealthCheck(cfg, cacheStats))
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		recommendations := api.Group("/recommendations")
		{
			recommendations.GET("/drinks", handler.HandleDrinkRecommendations)
			recommendations.GET("/foods", handler.HandleFoodRecommendations)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("timeout", timeoutDuration),
	)

	return router, nil
}
