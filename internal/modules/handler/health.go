package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/ds611b/practicas/internal/modules/serializer"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is any dependency the readiness probe checks.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]Pinger
	log    *zap.Logger
}

// NewHealthHandler takes the named dependency checks run by /ready.
func NewHealthHandler(checks map[string]Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{checks: checks, log: log}
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	serializer.Health
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Health{Status: "ok"})
}

// Ready godoc
//
//	@Summary		Readiness probe
//	@Description	Pings PostgreSQL, and Redis when configured.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	serializer.Health
//	@Failure		503	{object}	serializer.Health
//	@Router			/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	out := serializer.Health{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			h.log.Warn("readiness check failed", zap.String("check", name), zap.Error(err))
			out.Checks[name] = "down"
			out.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		out.Checks[name] = "up"
	}
	c.JSON(status, out)
}
