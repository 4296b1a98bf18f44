package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bloomandblossom/florist-backend/pkg/db"
	"github.com/bloomandblossom/florist-backend/pkg/db/models"
	dbtypes "github.com/bloomandblossom/florist-backend/pkg/db/types"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
	"github.com/bloomandblossom/florist-backend/pkg/metrics"
	"github.com/bloomandblossom/florist-backend/pkg/pagination"
)

// Service exposes the order lifecycle.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
	Track(ctx context.Context, orderNumber string) (*TrackedOrderDTO, error)
	SetStatus(ctx context.Context, orderID uuid.UUID, target enums.OrderStatus) (*OrderDTO, error)
	Get(ctx context.Context, ref string) (*OrderDTO, error)
	List(ctx context.Context, input ListOrdersInput) (*OrderListResult, error)
}

// OrderItemInput is one submitted line. When PlantID is set the item is
// enriched from the catalog (denormalized names, image) best-effort.
type OrderItemInput struct {
	PlantID   *uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	ImageURL  string
}

// CreateOrderInput holds the validated payload to submit an order.
type CreateOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	DeliveryType    enums.DeliveryType
	DeliveryAddress *string
	Items           []OrderItemInput
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
	Notes           *string
}

// ListOrdersInput captures backoffice listing inputs.
type ListOrdersInput struct {
	Status     *enums.OrderStatus
	Pagination pagination.Params
}

type plantReader interface {
	FindPlantByID(ctx context.Context, id uuid.UUID) (*models.Plant, error)
}

// service implements the order service.
type service struct {
	repo     *Repository
	dbClient *db.Client
	plants   plantReader
	metrics  *metrics.OrderMetrics
	logg     *logger.Logger
	now      func() time.Time
}

// NewService constructs an order service instance. Metrics may be nil.
func NewService(repo *Repository, dbClient *db.Client, plants plantReader, m *metrics.OrderMetrics, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if plants == nil {
		return nil, fmt.Errorf("plant reader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:     repo,
		dbClient: dbClient,
		plants:   plants,
		metrics:  m,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// Create validates and persists a submission. Totals are stored exactly as
// submitted; stock is not decremented here.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	items := make(dbtypes.OrderItems, len(input.Items))
	for i, item := range input.Items {
		items[i] = s.buildItem(ctx, item)
	}

	orderNumber, err := GenerateOrderNumber(s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating order number")
	}

	order := &models.Order{
		OrderNumber:     orderNumber,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerEmail:   input.CustomerEmail,
		DeliveryType:    input.DeliveryType,
		DeliveryAddress: input.DeliveryAddress,
		Items:           items,
		Subtotal:        input.Subtotal,
		DeliveryFee:     input.DeliveryFee,
		Total:           input.Total,
		Status:          enums.OrderStatusPending,
		Notes:           input.Notes,
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		_, err := s.repo.WithTx(tx).CreateOrder(ctx, order)
		return err
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order")
	}

	s.metrics.IncCreated()
	s.logg.Info(s.logg.WithField(ctx, "order_number", order.OrderNumber), "order created")

	return NewOrderDTO(order), nil
}

// Track returns the redacted public view for an exact order number match.
func (s *service) Track(ctx context.Context, orderNumber string) (*TrackedOrderDTO, error) {
	order, err := s.repo.FindByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}
	return NewTrackedOrderDTO(order), nil
}

// SetStatus transitions the order. Delivered and cancelled are terminal;
// transitions between the remaining statuses are unrestricted.
func (s *service) SetStatus(ctx context.Context, orderID uuid.UUID, target enums.OrderStatus) (*OrderDTO, error) {
	if !target.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("order in %s state cannot change status", order.Status)).
			WithDetails(map[string]string{"current": order.Status.String(), "requested": target.String()})
	}

	order.Status = target
	order.UpdatedAt = s.now()
	if _, err := s.repo.UpdateOrder(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating order status")
	}

	s.metrics.IncTransition(target.String())

	return NewOrderDTO(order), nil
}

// Get loads an order by UUID or order number for the backoffice.
func (s *service) Get(ctx context.Context, ref string) (*OrderDTO, error) {
	ref = strings.TrimSpace(ref)

	var order *models.Order
	var err error
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		order, err = s.repo.FindByID(ctx, id)
	} else {
		order, err = s.repo.FindByOrderNumber(ctx, ref)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}
	return NewOrderDTO(order), nil
}

// List returns the backoffice order page.
func (s *service) List(ctx context.Context, input ListOrdersInput) (*OrderListResult, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status filter")
	}

	page := pagination.Normalize(input.Pagination)
	rows, total, err := s.repo.ListOrders(ctx, input.Status, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	dtos := make([]OrderDTO, len(rows))
	for i := range rows {
		dtos[i] = *NewOrderDTO(&rows[i])
	}
	return &OrderListResult{
		Orders: dtos,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// buildItem denormalizes catalog data into the stored line. Missing plants
// are tolerated; the submitted values stand on their own.
func (s *service) buildItem(ctx context.Context, input OrderItemInput) dbtypes.OrderItem {
	item := dbtypes.OrderItem{
		PlantID:   input.PlantID,
		Name:      strings.TrimSpace(input.Name),
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
		ImageURL:  input.ImageURL,
	}
	if input.PlantID == nil {
		return item
	}

	plant, err := s.plants.FindPlantByID(ctx, *input.PlantID)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "plant_id", input.PlantID.String()), "order item plant lookup failed")
		return item
	}

	if item.Name == "" {
		item.Name = plant.Name
	}
	item.NameEN = derefStr(plant.NameEN)
	item.NameAZ = derefStr(plant.NameAZ)
	item.NameRU = derefStr(plant.NameRU)
	if item.ImageURL == "" {
		item.ImageURL = derefStr(plant.ImageURL)
	}
	return item
}

func validateCreate(input CreateOrderInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer_name is required")
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer_phone is required")
	}
	if input.CustomerEmail == nil || strings.TrimSpace(*input.CustomerEmail) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer_email is required")
	}
	if !input.DeliveryType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery_type")
	}
	if input.DeliveryType.RequiresAddress() && (input.DeliveryAddress == nil || strings.TrimSpace(*input.DeliveryAddress) == "") {
		return pkgerrors.New(pkgerrors.CodeValidation, "delivery_address is required for delivery orders")
	}
	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one item is required")
	}
	for _, item := range input.Items {
		if item.PlantID == nil && strings.TrimSpace(item.Name) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
		}
		if item.Quantity < 1 {
			return pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be at least 1")
		}
		if item.UnitPrice.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "item unit_price cannot be negative")
		}
	}
	if input.Subtotal.IsNegative() || input.DeliveryFee.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "amounts cannot be negative")
	}
	if !input.Total.Equal(input.Subtotal.Add(input.DeliveryFee)) {
		return pkgerrors.New(pkgerrors.CodeValidation, "total must equal subtotal plus delivery_fee")
	}
	return nil
}

func derefStr(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
