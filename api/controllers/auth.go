package controllers

import (
	"net/http"

	"github.com/bloomandblossom/florist-backend/api/middleware"
	"github.com/bloomandblossom/florist-backend/api/responses"
	"github.com/bloomandblossom/florist-backend/api/validators"
	authsvc "github.com/bloomandblossom/florist-backend/internal/auth"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges admin credentials for a bearer token.
func Login(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), authsvc.LoginInput{
			Username: payload.Username,
			Password: payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// Logout acknowledges the sign-out. Tokens are stateless, so the client
// discards its copy; nothing is revoked server-side.
func Logout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

// Verify echoes the authenticated identity. Runs behind the Auth middleware.
func Verify(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		responses.WriteSuccess(w, map[string]string{
			"user_id":  userID,
			"username": middleware.UsernameFromContext(r.Context()),
			"role":     middleware.RoleFromContext(r.Context()),
		})
	}
}
