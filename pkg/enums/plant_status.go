package enums

import "fmt"

// PlantStatus controls storefront visibility of a plant.
type PlantStatus string

const (
	PlantStatusAvailable   PlantStatus = "available"
	PlantStatusUnavailable PlantStatus = "unavailable"
)

// String implements fmt.Stringer.
func (s PlantStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known PlantStatus.
func (s PlantStatus) IsValid() bool {
	return s == PlantStatusAvailable || s == PlantStatusUnavailable
}

// ParsePlantStatus converts raw input into a PlantStatus.
func ParsePlantStatus(value string) (PlantStatus, error) {
	status := PlantStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid plant status %q", value)
	}
	return status, nil
}
