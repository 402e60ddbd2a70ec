package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/server/http/dto"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	service string
	probe   ReadinessProbe
	logger  *slog.Logger
}

// NewHealthHandler constructs HealthHandler for the named service.
func NewHealthHandler(service string, probe ReadinessProbe, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{service: service, probe: probe, logger: logger}
}

// Healthz reports that the process is up.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Service: h.service, Status: statusOK})
}

// Readyz reports whether backing storage is reachable.
func (h *HealthHandler) Readyz(c *gin.Context) {
	if err := h.probe.Ready(c.Request.Context()); err != nil {
		h.logger.Warn("readiness check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Service: h.service, Status: statusUnavailable})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Service: h.service, Status: statusOK})
}
