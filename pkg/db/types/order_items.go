package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is a single line of an order, denormalized at submission time so
// the order stays readable even if the plant is later edited or deleted.
type OrderItem struct {
	PlantID   *uuid.UUID      `json:"plant_id,omitempty"`
	Name      string          `json:"name"`
	NameEN    string          `json:"name_en,omitempty"`
	NameAZ    string          `json:"name_az,omitempty"`
	NameRU    string          `json:"name_ru,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url,omitempty"`
}

// OrderItems stores the order lines as a JSON blob column.
type OrderItems []OrderItem

func (items *OrderItems) Scan(src any) error {
	if src == nil {
		*items = OrderItems{}
		return nil
	}

	switch v := src.(type) {
	case string:
		return items.parseFromBytes([]byte(v))
	case []byte:
		return items.parseFromBytes(v)
	default:
		return fmt.Errorf("OrderItems: unsupported Scan type %T", src)
	}
}

func (items OrderItems) Value() (driver.Value, error) {
	if len(items) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("OrderItems: marshal: %w", err)
	}
	return string(raw), nil
}

func (items *OrderItems) parseFromBytes(raw []byte) error {
	if len(raw) == 0 {
		*items = OrderItems{}
		return nil
	}
	var out []OrderItem
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("OrderItems: unmarshal: %w", err)
	}
	*items = OrderItems(out)
	return nil
}
