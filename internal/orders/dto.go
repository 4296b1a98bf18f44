package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bloomandblossom/florist-backend/pkg/db/models"
	dbtypes "github.com/bloomandblossom/florist-backend/pkg/db/types"
)

const trackedAddressMaxLen = 30

// OrderDTO is the full order payload for the backoffice.
type OrderDTO struct {
	ID              uuid.UUID          `json:"id"`
	OrderNumber     string             `json:"order_number"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   *string            `json:"customer_email,omitempty"`
	DeliveryType    string             `json:"delivery_type"`
	DeliveryAddress *string            `json:"delivery_address,omitempty"`
	Items           dbtypes.OrderItems `json:"items"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DeliveryFee     decimal.Decimal    `json:"delivery_fee"`
	Total           decimal.Decimal    `json:"total"`
	Status          string             `json:"status"`
	Notes           *string            `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// TrackedOrderDTO is the redacted public view returned by the track endpoint.
// No name, phone, email, or notes; the address is truncated.
type TrackedOrderDTO struct {
	OrderNumber     string             `json:"order_number"`
	DeliveryType    string             `json:"delivery_type"`
	DeliveryAddress *string            `json:"delivery_address,omitempty"`
	Items           dbtypes.OrderItems `json:"items"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DeliveryFee     decimal.Decimal    `json:"delivery_fee"`
	Total           decimal.Decimal    `json:"total"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// OrderListResult wraps an order page with pagination metadata.
type OrderListResult struct {
	Orders []OrderDTO `json:"orders"`
	Total  int64      `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

// NewOrderDTO builds a DTO from the persisted model.
func NewOrderDTO(order *models.Order) *OrderDTO {
	return &OrderDTO{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerEmail:   order.CustomerEmail,
		DeliveryType:    string(order.DeliveryType),
		DeliveryAddress: order.DeliveryAddress,
		Items:           append(dbtypes.OrderItems{}, order.Items...),
		Subtotal:        order.Subtotal,
		DeliveryFee:     order.DeliveryFee,
		Total:           order.Total,
		Status:          string(order.Status),
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// NewTrackedOrderDTO builds the redacted public view.
func NewTrackedOrderDTO(order *models.Order) *TrackedOrderDTO {
	dto := &TrackedOrderDTO{
		OrderNumber:  order.OrderNumber,
		DeliveryType: string(order.DeliveryType),
		Items:        append(dbtypes.OrderItems{}, order.Items...),
		Subtotal:     order.Subtotal,
		DeliveryFee:  order.DeliveryFee,
		Total:        order.Total,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
	if order.DeliveryAddress != nil {
		truncated := truncateAddress(*order.DeliveryAddress)
		dto.DeliveryAddress = &truncated
	}
	return dto
}

func truncateAddress(address string) string {
	runes := []rune(address)
	if len(runes) <= trackedAddressMaxLen {
		return address
	}
	return string(runes[:trackedAddressMaxLen]) + "..."
}
