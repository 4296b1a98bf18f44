package enums

import "fmt"

// DeliveryType distinguishes pickup orders from home deliveries.
type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"
)

// String implements fmt.Stringer.
func (d DeliveryType) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DeliveryType.
func (d DeliveryType) IsValid() bool {
	return d == DeliveryTypePickup || d == DeliveryTypeDelivery
}

// RequiresAddress reports whether orders of this type need a delivery address.
func (d DeliveryType) RequiresAddress() bool {
	return d == DeliveryTypeDelivery
}

// ParseDeliveryType converts raw input into a DeliveryType.
func ParseDeliveryType(value string) (DeliveryType, error) {
	dt := DeliveryType(value)
	if !dt.IsValid() {
		return "", fmt.Errorf("invalid delivery type %q", value)
	}
	return dt, nil
}
