package handler

import (
	"context"
	"net/http"
	"time"

	"embassy-appointment-scheduler/internal/config"
	"embassy-appointment-scheduler/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Prober is the storage check the probes run.
type Prober interface {
	Ping(ctx context.Context) error
	CountAll(ctx context.Context) (int64, error)
}

const probeTimeout = 5 * time.Second

type HealthHandler struct {
	prober Prober
	cfg    *config.Config
	log    *zap.Logger
}

func NewHealthHandler(prober Prober, cfg *config.Config, log *zap.Logger) *HealthHandler {
	return &HealthHandler{prober: prober, cfg: cfg, log: log}
}

// Health is the liveness probe; it reports whether the database answers.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	if err := h.prober.Ping(ctx); err != nil {
		h.log.Error("health check failed", zap.Error(err))
		utils.ProbeResponse(c, http.StatusServiceUnavailable, "unhealthy", gin.H{"error": err.Error()})
		return
	}

	utils.ProbeResponse(c, http.StatusOK, "healthy", gin.H{
		"version":     h.cfg.App.Version,
		"environment": h.cfg.App.Environment,
	})
}

// Ready is the readiness probe; it requires the appointments table to be queryable.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	if _, err := h.prober.CountAll(ctx); err != nil {
		h.log.Error("readiness check failed", zap.Error(err))
		utils.ProbeResponse(c, http.StatusServiceUnavailable, "not ready", gin.H{"error": err.Error()})
		return
	}

	utils.ProbeResponse(c, http.StatusOK, "ready", nil)
}
