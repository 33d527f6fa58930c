// internal/adapters/httpapi/router.go

// Package httpapi serves the operational HTTP endpoints next to the gRPC API.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const readyTimeout = 2 * time.Second

// Pinger is a dependency whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type check struct {
	name   string
	pinger Pinger
}

type Router struct {
	checks []check
	log    *zap.Logger
}

func New(log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{log: log}
}

// Check registers a dependency for /readyz.
func (rt *Router) Check(name string, p Pinger) *Router {
	rt.checks = append(rt.checks, check{name: name, pinger: p})
	return rt
}

func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			rt.log.Warn("write error", zap.Error(err))
		}
	})
	r.Get("/readyz", rt.ready)
	return r
}

func (rt *Router) ready(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), readyTimeout)
	defer cancel()

	result := map[string]string{}
	code := http.StatusOK
	for _, c := range rt.checks {
		if err := c.pinger.Ping(ctx); err != nil {
			rt.log.Warn("readiness check failed", zap.String("dependency", c.name), zap.Error(err))
			result[c.name] = err.Error()
			code = http.StatusServiceUnavailable
			continue
		}
		result[c.name] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		rt.log.Warn("write error", zap.Error(err))
	}
}
