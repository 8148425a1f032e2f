package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"visitgate/internal/platform/metrics"
	"visitgate/internal/platform/middleware"
	dErrors "visitgate/pkg/domain-errors"
	"visitgate/pkg/platform/httputil"
	"visitgate/pkg/platform/middleware/requesttime"
)

// healthChecker is satisfied by the Redis client.
type healthChecker interface {
	Health(ctx context.Context) error
}

type registrar interface {
	Register(r chi.Router)
}

type routerDeps struct {
	logger         *slog.Logger
	metrics        *metrics.Metrics
	requestTimeout time.Duration
	redis          healthChecker
	eligibility    registrar
}

func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.logger))
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.LatencyMiddleware(deps.metrics))

	r.Get("/health", healthHandler(deps.redis))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(requesttime.Middleware)
		if deps.requestTimeout > 0 {
			r.Use(middleware.Timeout(deps.requestTimeout))
		}
		deps.eligibility.Register(r)
	})
	return r
}

func healthHandler(redis healthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redis != nil {
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()
			if err := redis.Health(ctx); err != nil {
				httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "redis unavailable"))
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
