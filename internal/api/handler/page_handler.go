package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/ricirt/k8s-lab-demo/internal/api/middleware"
	"github.com/ricirt/k8s-lab-demo/internal/service"
)

//go:embed templates/home.html
var templateFS embed.FS

var homeTmpl = template.Must(template.ParseFS(templateFS, "templates/home.html"))

// PageHandler serves the HTML landing page.
type PageHandler struct {
	svc    *service.PodService
	logger *zap.Logger
}

func NewPageHandler(svc *service.PodService, logger *zap.Logger) *PageHandler {
	return &PageHandler{svc: svc, logger: logger}
}

// Home handles GET /
//
// @Summary  Hello World landing page with pod details
// @Tags     pages
// @Produce  html
// @Success  200  {string}  string
// @Router   / [get]
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	// Render into a buffer first so a template failure can still produce a 500.
	var buf bytes.Buffer
	if err := homeTmpl.Execute(&buf, h.svc.Page()); err != nil {
		h.logger.Error("render landing page failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
