package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/bloomandblossom/florist-backend/pkg/enums"
)

// TranslationUsage is an append-only record of provider calls made by the
// translation pipeline. Written best-effort; never consulted for behavior.
type TranslationUsage struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	EntityType string         `gorm:"column:entity_type;not null"`
	EntityID   uuid.UUID      `gorm:"column:entity_id;type:uuid;not null"`
	Field      string         `gorm:"column:field;not null"`
	Language   enums.Language `gorm:"column:language;type:text;not null"`
	Characters int            `gorm:"column:characters;not null"`
	Fallback   bool           `gorm:"column:fallback;not null;default:false"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
}
