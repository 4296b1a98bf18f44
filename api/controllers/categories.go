package controllers

import (
	"net/http"
	"strings"

	"github.com/bloomandblossom/florist-backend/api/middleware"
	"github.com/bloomandblossom/florist-backend/api/responses"
	"github.com/bloomandblossom/florist-backend/api/validators"
	"github.com/bloomandblossom/florist-backend/internal/catalog"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
)

// ListCategories serves the storefront navigation. An authenticated admin
// also sees inactive categories.
func ListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categories, err := svc.ListCategories(r.Context(), middleware.IsAdmin(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, categories)
	}
}

type createCategoryRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	DisplayOrder int     `json:"display_order" validate:"min=0"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// AdminCreateCategory handles category creation including translation-on-write.
func AdminCreateCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload createCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		isActive := true
		if payload.IsActive != nil {
			isActive = *payload.IsActive
		}

		category, err := svc.CreateCategory(r.Context(), catalog.CreateCategoryInput{
			Name:         strings.TrimSpace(payload.Name),
			Description:  payload.Description,
			ImageURL:     payload.ImageURL,
			DisplayOrder: payload.DisplayOrder,
			IsActive:     isActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

type updateCategoryRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,min=0"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// AdminUpdateCategory applies a partial update without re-translation.
func AdminUpdateCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categoryID, err := validators.PathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.UpdateCategory(r.Context(), categoryID, catalog.UpdateCategoryInput{
			Name:         payload.Name,
			Description:  payload.Description,
			ImageURL:     payload.ImageURL,
			DisplayOrder: payload.DisplayOrder,
			IsActive:     payload.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, category)
	}
}

// AdminDeleteCategory removes a category; its plants stay behind uncategorized.
func AdminDeleteCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categoryID, err := validators.PathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteCategory(r.Context(), categoryID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
