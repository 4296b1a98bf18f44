package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bloomandblossom/florist-backend/pkg/db/models"
)

// PlantDTO represents the catalog listing payload returned to clients.
type PlantDTO struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	ScientificName     *string          `json:"scientific_name,omitempty"`
	CategoryID         *uuid.UUID       `json:"category_id,omitempty"`
	Category           *CategoryDTO     `json:"category,omitempty"`
	Price              decimal.Decimal  `json:"price"`
	SalePrice          *decimal.Decimal `json:"sale_price,omitempty"`
	StockQuantity      int              `json:"stock_quantity"`
	Description        *string          `json:"description,omitempty"`
	CareInstructions   *string          `json:"care_instructions,omitempty"`
	ImageURL           *string          `json:"image_url,omitempty"`
	GalleryImages      []string         `json:"gallery_images"`
	Featured           bool             `json:"featured"`
	Status             string           `json:"status"`
	TranslationStatus  string           `json:"translation_status"`
	NameEN             *string          `json:"name_en,omitempty"`
	NameAZ             *string          `json:"name_az,omitempty"`
	NameRU             *string          `json:"name_ru,omitempty"`
	DescriptionEN      *string          `json:"description_en,omitempty"`
	DescriptionAZ      *string          `json:"description_az,omitempty"`
	DescriptionRU      *string          `json:"description_ru,omitempty"`
	CareInstructionsEN *string          `json:"care_instructions_en,omitempty"`
	CareInstructionsAZ *string          `json:"care_instructions_az,omitempty"`
	CareInstructionsRU *string          `json:"care_instructions_ru,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// CategoryDTO represents the category payload returned to clients.
type CategoryDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	ImageURL      *string   `json:"image_url,omitempty"`
	DisplayOrder  int       `json:"display_order"`
	IsActive      bool      `json:"is_active"`
	NameEN        *string   `json:"name_en,omitempty"`
	NameAZ        *string   `json:"name_az,omitempty"`
	NameRU        *string   `json:"name_ru,omitempty"`
	DescriptionEN *string   `json:"description_en,omitempty"`
	DescriptionAZ *string   `json:"description_az,omitempty"`
	DescriptionRU *string   `json:"description_ru,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PlantListResult wraps a plant page with pagination metadata.
type PlantListResult struct {
	Plants []PlantDTO `json:"plants"`
	Total  int64      `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

// NewPlantDTO builds a DTO from the persisted model.
func NewPlantDTO(plant *models.Plant) *PlantDTO {
	dto := &PlantDTO{
		ID:                 plant.ID,
		Name:               plant.Name,
		ScientificName:     plant.ScientificName,
		CategoryID:         plant.CategoryID,
		Price:              plant.Price,
		SalePrice:          plant.SalePrice,
		StockQuantity:      plant.StockQuantity,
		Description:        plant.Description,
		CareInstructions:   plant.CareInstructions,
		ImageURL:           plant.ImageURL,
		GalleryImages:      append([]string{}, plant.GalleryImages...),
		Featured:           plant.Featured,
		Status:             string(plant.Status),
		TranslationStatus:  string(plant.TranslationStatus),
		NameEN:             plant.NameEN,
		NameAZ:             plant.NameAZ,
		NameRU:             plant.NameRU,
		DescriptionEN:      plant.DescriptionEN,
		DescriptionAZ:      plant.DescriptionAZ,
		DescriptionRU:      plant.DescriptionRU,
		CareInstructionsEN: plant.CareInstructionsEN,
		CareInstructionsAZ: plant.CareInstructionsAZ,
		CareInstructionsRU: plant.CareInstructionsRU,
		CreatedAt:          plant.CreatedAt,
		UpdatedAt:          plant.UpdatedAt,
	}
	if plant.Category != nil {
		dto.Category = NewCategoryDTO(plant.Category)
	}
	return dto
}

// NewCategoryDTO builds a DTO from the persisted model.
func NewCategoryDTO(category *models.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:            category.ID,
		Name:          category.Name,
		Description:   category.Description,
		ImageURL:      category.ImageURL,
		DisplayOrder:  category.DisplayOrder,
		IsActive:      category.IsActive,
		NameEN:        category.NameEN,
		NameAZ:        category.NameAZ,
		NameRU:        category.NameRU,
		DescriptionEN: category.DescriptionEN,
		DescriptionAZ: category.DescriptionAZ,
		DescriptionRU: category.DescriptionRU,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}
