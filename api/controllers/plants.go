package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bloomandblossom/florist-backend/api/middleware"
	"github.com/bloomandblossom/florist-backend/api/responses"
	"github.com/bloomandblossom/florist-backend/api/validators"
	"github.com/bloomandblossom/florist-backend/internal/catalog"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
)

// ListPlants serves the storefront browse endpoint. An authenticated admin
// also sees unavailable listings.
func ListPlants(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		categoryID, err := validators.ParseQueryUUID(r, "category_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		featured, err := validators.ParseQueryBool(r, "featured")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListPlants(r.Context(), catalog.ListPlantsInput{
			Filters: catalog.PlantListFilters{
				CategoryID: categoryID,
				Featured:   featured,
				Query:      strings.TrimSpace(r.URL.Query().Get("q")),
				Sort:       catalog.ParseSort(r.URL.Query().Get("sort")),
			},
			Pagination:         page,
			IncludeUnavailable: middleware.IsAdmin(r.Context()),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// GetPlant serves a single listing. Unavailable plants 404 for the public.
func GetPlant(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		plantID, err := validators.PathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		plant, err := svc.GetPlant(r.Context(), plantID, middleware.IsAdmin(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, plant)
	}
}

type createPlantRequest struct {
	Name             string           `json:"name" validate:"required"`
	ScientificName   *string          `json:"scientific_name,omitempty"`
	CategoryID       *string          `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Price            decimal.Decimal  `json:"price" validate:"required"`
	SalePrice        *decimal.Decimal `json:"sale_price,omitempty"`
	StockQuantity    int              `json:"stock_quantity" validate:"min=0"`
	Description      *string          `json:"description,omitempty"`
	CareInstructions *string          `json:"care_instructions,omitempty"`
	ImageURL         *string          `json:"image_url,omitempty"`
	GalleryImages    []string         `json:"gallery_images,omitempty"`
	Featured         bool             `json:"featured"`
	Status           *string          `json:"status,omitempty"`
}

func (req createPlantRequest) toInput() (catalog.CreatePlantInput, error) {
	input := catalog.CreatePlantInput{
		Name:             strings.TrimSpace(req.Name),
		ScientificName:   req.ScientificName,
		Price:            req.Price,
		SalePrice:        req.SalePrice,
		StockQuantity:    req.StockQuantity,
		Description:      req.Description,
		CareInstructions: req.CareInstructions,
		ImageURL:         req.ImageURL,
		GalleryImages:    req.GalleryImages,
		Featured:         req.Featured,
	}

	if req.CategoryID != nil {
		id, err := parseUUIDField(*req.CategoryID, "category_id")
		if err != nil {
			return catalog.CreatePlantInput{}, err
		}
		input.CategoryID = &id
	}
	if req.Status != nil {
		status, err := enums.ParsePlantStatus(strings.TrimSpace(*req.Status))
		if err != nil {
			return catalog.CreatePlantInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = status
	}
	return input, nil
}

// AdminCreatePlant handles listing creation including translation-on-write.
func AdminCreatePlant(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload createPlantRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		plant, err := svc.CreatePlant(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, plant)
	}
}

type updatePlantRequest struct {
	Name             *string          `json:"name,omitempty"`
	ScientificName   *string          `json:"scientific_name,omitempty"`
	CategoryID       *string          `json:"category_id,omitempty"`
	ClearCategory    bool             `json:"clear_category,omitempty"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	SalePrice        *decimal.Decimal `json:"sale_price,omitempty"`
	ClearSalePrice   bool             `json:"clear_sale_price,omitempty"`
	StockQuantity    *int             `json:"stock_quantity,omitempty" validate:"omitempty,min=0"`
	Description      *string          `json:"description,omitempty"`
	CareInstructions *string          `json:"care_instructions,omitempty"`
	ImageURL         *string          `json:"image_url,omitempty"`
	GalleryImages    *[]string        `json:"gallery_images,omitempty"`
	Featured         *bool            `json:"featured,omitempty"`
	Status           *string          `json:"status,omitempty"`
}

func (req updatePlantRequest) toInput() (catalog.UpdatePlantInput, error) {
	input := catalog.UpdatePlantInput{
		Name:             req.Name,
		ScientificName:   req.ScientificName,
		ClearCategory:    req.ClearCategory,
		Price:            req.Price,
		SalePrice:        req.SalePrice,
		ClearSalePrice:   req.ClearSalePrice,
		StockQuantity:    req.StockQuantity,
		Description:      req.Description,
		CareInstructions: req.CareInstructions,
		ImageURL:         req.ImageURL,
		GalleryImages:    req.GalleryImages,
		Featured:         req.Featured,
	}

	if req.CategoryID != nil {
		id, err := parseUUIDField(*req.CategoryID, "category_id")
		if err != nil {
			return catalog.UpdatePlantInput{}, err
		}
		input.CategoryID = &id
	}
	if req.Status != nil {
		status, err := enums.ParsePlantStatus(strings.TrimSpace(*req.Status))
		if err != nil {
			return catalog.UpdatePlantInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}
	return input, nil
}

// AdminUpdatePlant applies a partial update. Translated variants are left
// untouched unless the payload overwrites them through the source fields.
func AdminUpdatePlant(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		plantID, err := validators.PathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updatePlantRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		plant, err := svc.UpdatePlant(r.Context(), plantID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, plant)
	}
}

// AdminDeletePlant removes a listing.
func AdminDeletePlant(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		plantID, err := validators.PathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeletePlant(r.Context(), plantID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
