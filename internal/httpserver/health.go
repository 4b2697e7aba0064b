package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "shareit-server"
)

const readyProbeTimeout = 2 * time.Second

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready only when postgres (and redis, if configured) answer.
// @Summary Readiness Check
// @Description Check if the API can reach its storage
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Storage unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyProbeTimeout)
	defer cancel()

	checks := gin.H{"postgres": "ok"}
	ready := true

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "readyCheck postgres: %v", err)
		checks["postgres"] = err.Error()
		ready = false
	}
	if srv.redis != nil {
		checks["redis"] = "ok"
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			srv.l.Warnf(ctx, "readyCheck redis: %v", err)
			checks["redis"] = err.Error()
			ready = false
		}
	}

	status := "ready"
	code := http.StatusOK
	if !ready {
		status = "not ready"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":  status,
		"checks":  checks,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
