package models

import (
	"time"

	"github.com/google/uuid"
)

// StoreProfile is the singleton shop profile shown on the storefront.
type StoreProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	StoreName    string    `gorm:"column:store_name;not null"`
	Tagline      *string   `gorm:"column:tagline"`
	Description  *string   `gorm:"column:description"`
	Email        *string   `gorm:"column:email"`
	Phone        *string   `gorm:"column:phone"`
	Address      *string   `gorm:"column:address"`
	Hours        *string   `gorm:"column:hours"`
	DeliveryInfo *string   `gorm:"column:delivery_info"`
	SocialMedia  *string   `gorm:"column:social_media"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
