package controllers

import (
	"context"
	"net/http"

	"github.com/shiftlinehq/shiftline-backend/api/responses"
	"github.com/shiftlinehq/shiftline-backend/pkg/config"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
)

// Pinger is a dependency that can answer a health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shiftline-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every registered dependency answers
// a ping. Nil pingers (e.g. Redis disabled) are skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shiftline-Env", cfg.App.Env)

		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
