package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/bloomandblossom/florist-backend/pkg/enums"
)

// Plant represents a catalog listing.
type Plant struct {
	ID                 uuid.UUID               `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name               string                  `gorm:"column:name;not null"`
	ScientificName     *string                 `gorm:"column:scientific_name"`
	CategoryID         *uuid.UUID              `gorm:"column:category_id;type:uuid"`
	Category           *Category               `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Price              decimal.Decimal         `gorm:"column:price;type:numeric(10,2);not null"`
	SalePrice          *decimal.Decimal        `gorm:"column:sale_price;type:numeric(10,2)"`
	StockQuantity      int                     `gorm:"column:stock_quantity;not null;default:0"`
	Description        *string                 `gorm:"column:description"`
	CareInstructions   *string                 `gorm:"column:care_instructions"`
	ImageURL           *string                 `gorm:"column:image_url"`
	GalleryImages      pq.StringArray          `gorm:"column:gallery_images;type:text[];not null;default:ARRAY[]::text[]"`
	Featured           bool                    `gorm:"column:featured;not null;default:false"`
	Status             enums.PlantStatus       `gorm:"column:status;type:text;not null;default:'available'"`
	TranslationStatus  enums.TranslationStatus `gorm:"column:translation_status;type:text;not null;default:'pending'"`
	NameEN             *string                 `gorm:"column:name_en"`
	NameAZ             *string                 `gorm:"column:name_az"`
	NameRU             *string                 `gorm:"column:name_ru"`
	DescriptionEN      *string                 `gorm:"column:description_en"`
	DescriptionAZ      *string                 `gorm:"column:description_az"`
	DescriptionRU      *string                 `gorm:"column:description_ru"`
	CareInstructionsEN *string                 `gorm:"column:care_instructions_en"`
	CareInstructionsAZ *string                 `gorm:"column:care_instructions_az"`
	CareInstructionsRU *string                 `gorm:"column:care_instructions_ru"`
	CreatedAt          time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
