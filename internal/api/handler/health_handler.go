package handler

import (
	"net/http"

	"github.com/ricirt/k8s-lab-demo/internal/domain"
)

// HealthHandler serves the liveness and readiness probe endpoints.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Health handles GET /health
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.Status
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Status{Status: domain.StatusHealthy})
}

// Ready handles GET /ready
//
// @Summary  Readiness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.Status
// @Router   /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Status{Status: domain.StatusReady})
}
