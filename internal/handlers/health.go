package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/viltrumflow/taskflow-api/internal/config"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	cfg *config.Config
	db  Pinger
}

func NewHealthHandler(cfg *config.Config, db Pinger) *HealthHandler {
	return &HealthHandler{cfg: cfg, db: db}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        h.cfg.ProjectName,
		"version":     h.cfg.Version,
		"status":      "running",
		"environment": h.cfg.Environment,
	})
}

// Health pings the database. An unreachable database yields 503.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, code, database := "healthy", http.StatusOK, "connected"
	if err := h.db.Ping(ctx); err != nil {
		status, code, database = "unhealthy", http.StatusServiceUnavailable, "disconnected"
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  database,
		"timestamp": time.Now().Unix(),
	})
}

func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":         h.cfg.ProjectName,
		"version":      h.cfg.Version,
		"environment":  h.cfg.Environment,
		"debug":        h.cfg.Debug,
		"cors_origins": h.cfg.CORSOrigins,
	})
}
