package controllers

import (
	"net/http"

	"github.com/bloomandblossom/florist-backend/api/responses"
	"github.com/bloomandblossom/florist-backend/internal/dashboard"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
)

// AdminDashboardStats serves the backoffice overview counters.
func AdminDashboardStats(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
