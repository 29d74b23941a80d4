package handler

import (
	"net/http"

	"github.com/ricirt/k8s-lab-demo/internal/service"
)

// InfoHandler serves application and pod metadata as JSON.
type InfoHandler struct {
	svc *service.PodService
}

func NewInfoHandler(svc *service.PodService) *InfoHandler {
	return &InfoHandler{svc: svc}
}

// Info handles GET /api/info
//
// @Summary  Application name, version, pod and server time
// @Tags     info
// @Produce  json
// @Success  200  {object}  domain.Info
// @Router   /api/info [get]
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Info())
}
