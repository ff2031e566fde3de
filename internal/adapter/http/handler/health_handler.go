package handler

import (
	"net/http"

	"payment-orchestrator/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
	Gateways     []string                    `json:"gateways"`
}

// HealthCheck handles GET /health. It pings every dependency and reports the
// registered gateway adapters; a service without adapters cannot route and is
// reported as degraded.
func HealthCheck(router ports.GatewayRouter, checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := healthResponse{
			Status:       "healthy",
			Dependencies: make(map[string]dependencyStatus, len(checkers)),
			Gateways:     router.ListSupportedCodes(),
		}

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				resp.Dependencies[checker.Name()] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
				resp.Status = "degraded"
				continue
			}
			resp.Dependencies[checker.Name()] = dependencyStatus{Status: "healthy"}
		}
		if router.CountAdapters() == 0 {
			resp.Status = "degraded"
		}

		code := http.StatusOK
		if resp.Status != "healthy" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, resp)
	}
}
