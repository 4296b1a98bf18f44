package controllers

import (
	"net/http"

	"github.com/bloomandblossom/florist-backend/api/responses"
	"github.com/bloomandblossom/florist-backend/api/validators"
	"github.com/bloomandblossom/florist-backend/internal/storeprofile"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
)

// GetStore serves the public shop profile.
func GetStore(svc storeprofile.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store service unavailable"))
			return
		}

		profile, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

type updateStoreRequest struct {
	StoreName    *string `json:"store_name,omitempty"`
	Tagline      *string `json:"tagline,omitempty"`
	Description  *string `json:"description,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Hours        *string `json:"hours,omitempty"`
	DeliveryInfo *string `json:"delivery_info,omitempty"`
	SocialMedia  *string `json:"social_media,omitempty"`
}

// AdminUpdateStore applies partial changes to the singleton profile.
func AdminUpdateStore(svc storeprofile.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store service unavailable"))
			return
		}

		var payload updateStoreRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Update(r.Context(), storeprofile.UpdateInput{
			StoreName:    payload.StoreName,
			Tagline:      payload.Tagline,
			Description:  payload.Description,
			Email:        payload.Email,
			Phone:        payload.Phone,
			Address:      payload.Address,
			Hours:        payload.Hours,
			DeliveryInfo: payload.DeliveryInfo,
			SocialMedia:  payload.SocialMedia,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}
