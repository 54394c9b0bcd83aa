package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness and readiness probes. The service keeps
// no local state, so readiness mirrors liveness once the process is up.
type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "framepay",
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"service": "framepay",
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}
