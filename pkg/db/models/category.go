package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups plants on the storefront. The unsuffixed fields hold the
// Turkish base text; the language variants are filled by the translation
// pipeline on create.
type Category struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Description   *string   `gorm:"column:description"`
	ImageURL      *string   `gorm:"column:image_url"`
	DisplayOrder  int       `gorm:"column:display_order;not null;default:0"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true"`
	NameEN        *string   `gorm:"column:name_en"`
	NameAZ        *string   `gorm:"column:name_az"`
	NameRU        *string   `gorm:"column:name_ru"`
	DescriptionEN *string   `gorm:"column:description_en"`
	DescriptionAZ *string   `gorm:"column:description_az"`
	DescriptionRU *string   `gorm:"column:description_ru"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
