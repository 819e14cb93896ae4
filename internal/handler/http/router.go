package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopapi/catalog/internal/service"
	"github.com/shopapi/catalog/pkg/health"
	"github.com/shopapi/catalog/pkg/middleware"
)

const (
	serviceName    = "catalog"
	requestTimeout = 30 * time.Second
)

// RouterConfig carries the operational settings of the router.
type RouterConfig struct {
	CORSAllowedOrigins []string
	PprofAllowedCIDRs  []string
	// Registry backs both the HTTP collectors and the /metrics endpoint.
	Registry *prometheus.Registry
}

// NewRouter creates a chi router with all catalog routes registered.
func NewRouter(
	productService *service.ProductService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	httpMetrics := middleware.NewHTTPMetrics(reg, serviceName)

	// Global middleware
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSAllowedOrigins)))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(middleware.RequestLogging(logger))
	r.Use(httpMetrics.Middleware)
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	middleware.RegisterPprof(r, cfg.PprofAllowedCIDRs, logger)

	// Product API endpoints
	productHandler := NewProductHandler(productService, logger)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Get("/search", productHandler.SearchProducts)
		r.Get("/{id}", productHandler.GetProduct)
		r.Post("/", productHandler.CreateProduct)
		r.Post("/add-images", productHandler.AddImages)
		r.Delete("/remove-images", productHandler.RemoveImages)
		r.Delete("/{id}", productHandler.DeleteProduct)
	})

	return r
}
