package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/bloomandblossom/florist-backend/pkg/db/types"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
)

// Order is a customer submission. Line items are denormalized into a JSON
// column; totals are stored exactly as submitted.
type Order struct {
	ID              uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber     string             `gorm:"column:order_number;not null;uniqueIndex"`
	CustomerName    string             `gorm:"column:customer_name;not null"`
	CustomerPhone   string             `gorm:"column:customer_phone;not null"`
	CustomerEmail   *string            `gorm:"column:customer_email"`
	DeliveryType    enums.DeliveryType `gorm:"column:delivery_type;type:text;not null"`
	DeliveryAddress *string            `gorm:"column:delivery_address"`
	Items           dbtypes.OrderItems `gorm:"column:items;type:jsonb;not null"`
	Subtotal        decimal.Decimal    `gorm:"column:subtotal;type:numeric(10,2);not null"`
	DeliveryFee     decimal.Decimal    `gorm:"column:delivery_fee;type:numeric(10,2);not null;default:0"`
	Total           decimal.Decimal    `gorm:"column:total;type:numeric(10,2);not null"`
	Status          enums.OrderStatus  `gorm:"column:status;type:text;not null;default:'pending'"`
	Notes           *string            `gorm:"column:notes"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
