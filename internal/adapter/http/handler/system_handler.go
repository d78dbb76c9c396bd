package handler

import (
	"net/http"

	"cubo-pix-gateway/internal/adapter/http/dto"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/pkg/apperror"
	"cubo-pix-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// Ping handles GET /api/ping.
func Ping(port int) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, dto.PingResponse{Envelope: response.Success, Port: port})
	}
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps := make(map[string]dto.DependencyStatus, len(checkers))
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = dto.DependencyStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = dto.DependencyStatus{Status: "healthy"}
			}
		}

		body := dto.HealthResponse{Envelope: response.Success, Status: "healthy", Dependencies: deps}
		httpCode := http.StatusOK
		if !allHealthy {
			body.OK = false
			body.Status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, body)
	}
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	response.Error(c, apperror.NotFound())
}
