package controllers

import (
	"context"
	"net/http"

	"github.com/bloomandblossom/florist-backend/api/responses"
	"github.com/bloomandblossom/florist-backend/pkg/config"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Florist-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness only when the backing stores answer.
func HealthReady(cfg *config.Config, db, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Florist-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				checks["db"] = "down"
				healthy = false
			} else {
				checks["db"] = "up"
			}
		}
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				checks["redis"] = "down"
				healthy = false
			} else {
				checks["redis"] = "up"
			}
		}

		if !healthy {
			responses.WriteError(r.Context(), logg,
				w, pkgerrors.New(pkgerrors.CodeDependency, "dependencies unavailable").WithDetails(checks))
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
