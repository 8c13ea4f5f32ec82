package health

import (
	"net/http"
	"runtime"
	"time"

	"pairing-generator/internal/infrastructure/config"
	"pairing-generator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// StatsProvider exposes cache counters for the health payload.
type StatsProvider interface {
	Stats() map[string]interface{}
}

// HealthCheck reports service status, runtime stats and cache counters.
func HealthCheck(cfg *config.Config, cacheStats StatsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		response := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
			Version:   cfg.App.Version,
			Runtime: map[string]interface{}{
				"goroutines": runtime.NumGoroutine(),
				"memory": map[string]interface{}{
					"alloc":       m.Alloc,
					"total_alloc": m.TotalAlloc,
					"sys":         m.Sys,
					"num_gc":      m.NumGC,
				},
			},
		}

		if cacheStats != nil {
			response.Cache = cacheStats.Stats()
		}

		common.LogInfo("Health check request",
			zap.String("client_ip", c.ClientIP()),
			zap.String("path", c.Request.URL.Path),
		)

		c.JSON(http.StatusOK, response)
	}
}

// ReadinessCheck reports whether the service can take traffic.
func ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck reports whether the process is alive.
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
