package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HealthController reports the liveness of the server and its dependencies.
type HealthController struct {
	checks  map[string]Pinger
	version string
}

func NewHealthController(checks map[string]Pinger, version string) *HealthController {
	return &HealthController{checks: checks, version: version}
}

// Health runs every registered check and responds 503 if any of them fails.
func (hc *HealthController) Health(c *gin.Context) {
	response := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().UTC().Format(time.RFC3339),
		Version: hc.version,
		Checks:  make(map[string]string, len(hc.checks)),
	}

	names := make([]string, 0, len(hc.checks))
	for name := range hc.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	for _, name := range names {
		if err := hc.checks[name].Ping(ctx); err != nil {
			response.Status = "unhealthy"
			response.Checks[name] = "error: " + err.Error()
			continue
		}
		response.Checks[name] = "ok"
	}

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.IndentedJSON(status, response)
}

func (hc *HealthController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "pong"})
}
