package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bloomandblossom/florist-backend/pkg/db/models"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
)

// LowStockThreshold marks a listing as running out.
const LowStockThreshold = 5

// StatsDTO is the backoffice overview payload.
type StatsDTO struct {
	AvailablePlants int64           `json:"available_plants"`
	TotalOrders     int64           `json:"total_orders"`
	PendingOrders   int64           `json:"pending_orders"`
	LowStockPlants  int64           `json:"low_stock_plants"`
	Revenue         decimal.Decimal `json:"revenue"`
}

// Service exposes admin dashboard statistics.
type Service interface {
	Stats(ctx context.Context) (*StatsDTO, error)
}

// service implements the dashboard service.
type service struct {
	db *gorm.DB
}

// NewService constructs a dashboard service instance.
func NewService(db *gorm.DB) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &service{db: db}, nil
}

// Stats aggregates the overview counters. Revenue excludes cancelled orders.
func (s *service) Stats(ctx context.Context) (*StatsDTO, error) {
	stats := &StatsDTO{Revenue: decimal.Zero}
	conn := s.db.WithContext(ctx)

	if err := conn.Model(&models.Plant{}).
		Where("status = ?", enums.PlantStatusAvailable).
		Count(&stats.AvailablePlants).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting available plants")
	}

	if err := conn.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting orders")
	}

	if err := conn.Model(&models.Order{}).
		Where("status = ?", enums.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting pending orders")
	}

	if err := conn.Model(&models.Plant{}).
		Where("status = ? AND stock_quantity <= ?", enums.PlantStatusAvailable, LowStockThreshold).
		Count(&stats.LowStockPlants).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting low stock plants")
	}

	var totals []decimal.Decimal
	if err := conn.Model(&models.Order{}).
		Where("status <> ?", enums.OrderStatusCancelled).
		Pluck("total", &totals).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "summing revenue")
	}
	for _, total := range totals {
		stats.Revenue = stats.Revenue.Add(total)
	}

	return stats, nil
}
