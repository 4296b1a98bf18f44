package catalog

import (
	"github.com/google/uuid"

	"github.com/bloomandblossom/florist-backend/pkg/pagination"
)

// SortOption orders plant listings.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortName      SortOption = "name"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
)

// ParseSort maps raw input onto a SortOption, defaulting to newest.
func ParseSort(value string) SortOption {
	switch SortOption(value) {
	case SortName, SortPriceAsc, SortPriceDesc:
		return SortOption(value)
	default:
		return SortNewest
	}
}

func (s SortOption) orderClause() string {
	switch s {
	case SortName:
		return "name ASC"
	case SortPriceAsc:
		return "price ASC"
	case SortPriceDesc:
		return "price DESC"
	default:
		return "created_at DESC"
	}
}

// PlantListFilters describe the supported filter knobs for the browse endpoint.
type PlantListFilters struct {
	CategoryID *uuid.UUID
	Featured   *bool
	Query      string
	Sort       SortOption
}

// ListPlantsInput captures the inputs needed to paginate/filter plants.
// IncludeUnavailable is only set on the admin path.
type ListPlantsInput struct {
	Filters            PlantListFilters
	Pagination         pagination.Params
	IncludeUnavailable bool
}
