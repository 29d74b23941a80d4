package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ricirt/k8s-lab-demo/internal/api/handler"
	apimw "github.com/ricirt/k8s-lab-demo/internal/api/middleware"
	"github.com/ricirt/k8s-lab-demo/internal/metrics"
	"github.com/ricirt/k8s-lab-demo/internal/ratelimiter"
	"github.com/ricirt/k8s-lab-demo/internal/service"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	svc *service.PodService,
	limiter *ratelimiter.Limiter,
	m *metrics.Metrics,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(Middlewares(m, logger)...)

	// --- handler instances ---
	hh := handler.NewHealthHandler()
	ih := handler.NewInfoHandler(svc)
	ph := handler.NewPageHandler(svc, logger)

	// --- routes ---
	// Probes and the scrape endpoint stay outside the rate limiter so the
	// kubelet and Prometheus are never throttled.
	r.Get("/health", hh.Health)
	r.Get("/ready", hh.Ready)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(limiter))
		r.Get("/", ph.Home)
		r.Get("/api/info", ih.Info)
	})

	return r
}

// Middlewares returns the global middleware chain in mount order.
// Recoverer sits inside RequestLogger and Instrument so a recovered panic
// is still logged and counted as a 500.
func Middlewares(m *metrics.Metrics, logger *zap.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		chimw.RealIP,
		apimw.CorrelationID,
		apimw.RequestLogger(logger, "/health", "/ready", "/metrics"),
		apimw.Instrument(m),
		chimw.Recoverer,
		chimw.RequestSize(1 << 20), // 1 MB max request body
		chimw.GetHead,              // answer HEAD on every GET route
	}
}
