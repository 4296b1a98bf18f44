package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/bloomandblossom/florist-backend/internal/translation"
	"github.com/bloomandblossom/florist-backend/pkg/db"
	"github.com/bloomandblossom/florist-backend/pkg/db/models"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
	"github.com/bloomandblossom/florist-backend/pkg/pagination"
)

const (
	fieldName             = "name"
	fieldDescription      = "description"
	fieldCareInstructions = "care_instructions"

	entityPlant    = "plant"
	entityCategory = "category"
)

// Service exposes plant and category management operations.
type Service interface {
	CreatePlant(ctx context.Context, input CreatePlantInput) (*PlantDTO, error)
	UpdatePlant(ctx context.Context, plantID uuid.UUID, input UpdatePlantInput) (*PlantDTO, error)
	DeletePlant(ctx context.Context, plantID uuid.UUID) error
	GetPlant(ctx context.Context, plantID uuid.UUID, includeUnavailable bool) (*PlantDTO, error)
	ListPlants(ctx context.Context, input ListPlantsInput) (*PlantListResult, error)

	CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
	ListCategories(ctx context.Context, includeInactive bool) ([]CategoryDTO, error)
}

// CreatePlantInput holds the validated payload to create a plant.
type CreatePlantInput struct {
	Name             string
	ScientificName   *string
	CategoryID       *uuid.UUID
	Price            decimal.Decimal
	SalePrice        *decimal.Decimal
	StockQuantity    int
	Description      *string
	CareInstructions *string
	ImageURL         *string
	GalleryImages    []string
	Featured         bool
	Status           enums.PlantStatus
}

// UpdatePlantInput holds optional mutation values for a plant. Updates never
// re-run the translation pipeline; the authored variants stay as created
// unless overwritten here explicitly.
type UpdatePlantInput struct {
	Name             *string
	ScientificName   *string
	CategoryID       *uuid.UUID
	ClearCategory    bool
	Price            *decimal.Decimal
	SalePrice        *decimal.Decimal
	ClearSalePrice   bool
	StockQuantity    *int
	Description      *string
	CareInstructions *string
	ImageURL         *string
	GalleryImages    *[]string
	Featured         *bool
	Status           *enums.PlantStatus
}

// CreateCategoryInput holds the validated payload to create a category.
type CreateCategoryInput struct {
	Name         string
	Description  *string
	ImageURL     *string
	DisplayOrder int
	IsActive     bool
}

// UpdateCategoryInput holds optional mutation values for a category.
type UpdateCategoryInput struct {
	Name         *string
	Description  *string
	ImageURL     *string
	DisplayOrder *int
	IsActive     *bool
}

// service implements the catalog service.
type service struct {
	repo     *Repository
	dbClient *db.Client
	pipeline *translation.Pipeline
	logg     *logger.Logger
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository, dbClient *db.Client, pipeline *translation.Pipeline, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if pipeline == nil {
		return nil, fmt.Errorf("translation pipeline required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:     repo,
		dbClient: dbClient,
		pipeline: pipeline,
		logg:     logg,
	}, nil
}

// CreatePlant validates, translates, and persists a new listing. The pipeline
// runs synchronously before the insert so the row lands with its variants.
func (s *service) CreatePlant(ctx context.Context, input CreatePlantInput) (*PlantDTO, error) {
	if err := validatePrices(input.Price, input.SalePrice); err != nil {
		return nil, err
	}
	if input.StockQuantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock_quantity cannot be negative")
	}
	status := input.Status
	if status == "" {
		status = enums.PlantStatusAvailable
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid plant status")
	}
	if input.CategoryID != nil {
		if _, err := s.repo.FindCategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading category")
		}
	}

	result := s.pipeline.Run(ctx, map[string]string{
		fieldName:             input.Name,
		fieldDescription:      deref(input.Description),
		fieldCareInstructions: deref(input.CareInstructions),
	})

	translationStatus := enums.TranslationStatusComplete
	if result.Degraded {
		translationStatus = enums.TranslationStatusPending
	}

	plant := &models.Plant{
		Name:               input.Name,
		ScientificName:     input.ScientificName,
		CategoryID:         input.CategoryID,
		Price:              input.Price,
		SalePrice:          input.SalePrice,
		StockQuantity:      input.StockQuantity,
		Description:        input.Description,
		CareInstructions:   input.CareInstructions,
		ImageURL:           input.ImageURL,
		GalleryImages:      input.GalleryImages,
		Featured:           input.Featured,
		Status:             status,
		TranslationStatus:  translationStatus,
		NameEN:             translated(result, fieldName, enums.LanguageEnglish),
		NameAZ:             translated(result, fieldName, enums.LanguageAzerbaijani),
		NameRU:             translated(result, fieldName, enums.LanguageRussian),
		DescriptionEN:      translated(result, fieldDescription, enums.LanguageEnglish),
		DescriptionAZ:      translated(result, fieldDescription, enums.LanguageAzerbaijani),
		DescriptionRU:      translated(result, fieldDescription, enums.LanguageRussian),
		CareInstructionsEN: translated(result, fieldCareInstructions, enums.LanguageEnglish),
		CareInstructionsAZ: translated(result, fieldCareInstructions, enums.LanguageAzerbaijani),
		CareInstructionsRU: translated(result, fieldCareInstructions, enums.LanguageRussian),
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		_, err := s.repo.WithTx(tx).CreatePlant(ctx, plant)
		return err
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating plant")
	}

	s.persistUsage(ctx, entityPlant, plant.ID, result.Usage)

	return NewPlantDTO(plant), nil
}

// UpdatePlant applies partial changes. No re-translation on update.
func (s *service) UpdatePlant(ctx context.Context, plantID uuid.UUID, input UpdatePlantInput) (*PlantDTO, error) {
	plant, err := s.repo.FindPlantByID(ctx, plantID)
	if err != nil {
		return nil, plantLoadError(err)
	}

	if input.Name != nil {
		plant.Name = *input.Name
	}
	if input.ScientificName != nil {
		plant.ScientificName = input.ScientificName
	}
	switch {
	case input.ClearCategory:
		plant.CategoryID = nil
		plant.Category = nil
	case input.CategoryID != nil:
		if _, err := s.repo.FindCategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading category")
		}
		plant.CategoryID = input.CategoryID
		plant.Category = nil
	}
	if input.Price != nil {
		plant.Price = *input.Price
	}
	switch {
	case input.ClearSalePrice:
		plant.SalePrice = nil
	case input.SalePrice != nil:
		plant.SalePrice = input.SalePrice
	}
	if err := validatePrices(plant.Price, plant.SalePrice); err != nil {
		return nil, err
	}
	if input.StockQuantity != nil {
		if *input.StockQuantity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock_quantity cannot be negative")
		}
		plant.StockQuantity = *input.StockQuantity
	}
	if input.Description != nil {
		plant.Description = input.Description
	}
	if input.CareInstructions != nil {
		plant.CareInstructions = input.CareInstructions
	}
	if input.ImageURL != nil {
		plant.ImageURL = input.ImageURL
	}
	if input.GalleryImages != nil {
		plant.GalleryImages = *input.GalleryImages
	}
	if input.Featured != nil {
		plant.Featured = *input.Featured
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid plant status")
		}
		plant.Status = *input.Status
	}

	if _, err := s.repo.UpdatePlant(ctx, plant); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating plant")
	}
	return NewPlantDTO(plant), nil
}

// DeletePlant removes the listing.
func (s *service) DeletePlant(ctx context.Context, plantID uuid.UUID) error {
	if err := s.repo.DeletePlant(ctx, plantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "plant not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting plant")
	}
	return nil
}

// GetPlant loads a single listing. Public callers only see available plants.
func (s *service) GetPlant(ctx context.Context, plantID uuid.UUID, includeUnavailable bool) (*PlantDTO, error) {
	plant, err := s.repo.FindPlantByID(ctx, plantID)
	if err != nil {
		return nil, plantLoadError(err)
	}
	if !includeUnavailable && plant.Status != enums.PlantStatusAvailable {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "plant not found")
	}
	return NewPlantDTO(plant), nil
}

// ListPlants returns a filtered page of listings.
func (s *service) ListPlants(ctx context.Context, input ListPlantsInput) (*PlantListResult, error) {
	page := pagination.Normalize(input.Pagination)
	plants, total, err := s.repo.ListPlants(ctx, input.Filters, page, input.IncludeUnavailable)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing plants")
	}

	dtos := make([]PlantDTO, len(plants))
	for i := range plants {
		dtos[i] = *NewPlantDTO(&plants[i])
	}
	return &PlantListResult{
		Plants: dtos,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// CreateCategory validates, translates, and persists a category.
func (s *service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error) {
	result := s.pipeline.Run(ctx, map[string]string{
		fieldName:        input.Name,
		fieldDescription: deref(input.Description),
	})

	category := &models.Category{
		Name:          input.Name,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		DisplayOrder:  input.DisplayOrder,
		IsActive:      input.IsActive,
		NameEN:        translated(result, fieldName, enums.LanguageEnglish),
		NameAZ:        translated(result, fieldName, enums.LanguageAzerbaijani),
		NameRU:        translated(result, fieldName, enums.LanguageRussian),
		DescriptionEN: translated(result, fieldDescription, enums.LanguageEnglish),
		DescriptionAZ: translated(result, fieldDescription, enums.LanguageAzerbaijani),
		DescriptionRU: translated(result, fieldDescription, enums.LanguageRussian),
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		_, err := s.repo.WithTx(tx).CreateCategory(ctx, category)
		return err
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating category")
	}

	s.persistUsage(ctx, entityCategory, category.ID, result.Usage)

	return NewCategoryDTO(category), nil
}

// UpdateCategory applies partial changes. No re-translation on update.
func (s *service) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error) {
	category, err := s.repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading category")
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = input.Description
	}
	if input.ImageURL != nil {
		category.ImageURL = input.ImageURL
	}
	if input.DisplayOrder != nil {
		category.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if _, err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating category")
	}
	return NewCategoryDTO(category), nil
}

// DeleteCategory removes the category; its plants are detached, not deleted.
func (s *service) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).DeleteCategory(ctx, categoryID)
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting category")
	}
	return nil
}

// ListCategories returns the storefront ordering.
func (s *service) ListCategories(ctx context.Context, includeInactive bool) ([]CategoryDTO, error) {
	categories, err := s.repo.ListCategories(ctx, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing categories")
	}
	dtos := make([]CategoryDTO, len(categories))
	for i := range categories {
		dtos[i] = *NewCategoryDTO(&categories[i])
	}
	return dtos, nil
}

// persistUsage appends usage rows best-effort. Failures are aggregated and
// logged; they never fail the write that produced them.
func (s *service) persistUsage(ctx context.Context, entityType string, entityID uuid.UUID, usages []translation.Usage) {
	if len(usages) == 0 {
		return
	}
	rows := make([]models.TranslationUsage, len(usages))
	for i, usage := range usages {
		rows[i] = models.TranslationUsage{
			EntityType: entityType,
			EntityID:   entityID,
			Field:      usage.Field,
			Language:   usage.Language,
			Characters: usage.Characters,
			Fallback:   usage.Fallback,
		}
	}

	var errs error
	if err := s.repo.CreateTranslationUsages(ctx, rows); err != nil {
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		s.logg.Error(ctx, "persisting translation usage", errs)
	}
}

func validatePrices(price decimal.Decimal, salePrice *decimal.Decimal) error {
	if price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if salePrice != nil && salePrice.GreaterThanOrEqual(price) {
		return pkgerrors.New(pkgerrors.CodeValidation, "sale_price must be lower than price")
	}
	if salePrice != nil && salePrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "sale_price cannot be negative")
	}
	return nil
}

func plantLoadError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "plant not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading plant")
}

func translated(result translation.Result, field string, lang enums.Language) *string {
	value := result.Get(field, lang)
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
