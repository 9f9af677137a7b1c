package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ActivityService is the full surface the router needs from the
// application layer.
type ActivityService interface {
	ActivityLister
	Enroller
	Withdrawer
}

// RouterConfig carries the collaborator pieces the router wires in.
type RouterConfig struct {
	Logger      *zap.Logger
	CORSOrigins []string
	// StaticDir, when non-empty, is served under /static/.
	StaticDir string
}

// NewRouter assembles the route table and middleware chain.
func NewRouter(svc ActivityService, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", HealthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /activities", HandleListActivities(svc))
	mux.Handle("POST /activities/{name}/signup", HandleSignup(svc))
	mux.Handle("POST /activities/{name}/unregister", HandleUnregister(svc))
	mux.Handle("GET /{$}", RootHandler())
	if cfg.StaticDir != "" {
		mux.Handle("GET /static/", StaticHandler(cfg.StaticDir))
	}

	return RequestLogger(Metrics(CORS(cfg.CORSOrigins, withJSONNotFound(mux))), cfg.Logger)
}
