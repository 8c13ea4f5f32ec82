package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pairing-generator/internal/api"
	"pairing-generator/internal/api/handlers/health"
	"pairing-generator/internal/core/ai/cache"
	"pairing-generator/internal/core/pairing"
	"pairing-generator/internal/infrastructure/config"
	"pairing-generator/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// logger depends on config and LOG_MODE from .env
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("configuration loaded",
		zap.Strings("gemini_models", cfg.Gemini.Models),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	store, cacheStats, closeStore, err := newCacheStore(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize cache store", zap.Error(err))
	}
	if closeStore != nil {
		defer closeStore()
	}

	router, err := api.SetupRouter(cfg, store, cacheStats)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("starting application",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}

// newCacheStore builds the configured cache backend. A nil store means
// caching is disabled and every request goes to the models.
func newCacheStore(cfg *config.Config) (pairing.Store, health.StatsProvider, func() error, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil, nil, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		store, err := cache.NewRedisStore(&cfg.Cache)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, nil, store.Close, nil
	default:
		manager := cache.NewManager(&cfg.Cache)
		return manager, manager, manager.Close, nil
	}
}
