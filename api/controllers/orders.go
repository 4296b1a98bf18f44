package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/bloomandblossom/florist-backend/api/responses"
	"github.com/bloomandblossom/florist-backend/api/validators"
	ordersvc "github.com/bloomandblossom/florist-backend/internal/orders"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
)

type orderItemRequest struct {
	PlantID   *string         `json:"plant_id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url,omitempty"`
}

type createOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerPhone   string             `json:"customer_phone" validate:"required"`
	CustomerEmail   *string            `json:"customer_email" validate:"required,email"`
	DeliveryType    string             `json:"delivery_type" validate:"required"`
	DeliveryAddress *string            `json:"delivery_address,omitempty"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DeliveryFee     decimal.Decimal    `json:"delivery_fee"`
	Total           decimal.Decimal    `json:"total"`
	Notes           *string            `json:"notes,omitempty"`
}

func (req createOrderRequest) toInput() (ordersvc.CreateOrderInput, error) {
	deliveryType, err := enums.ParseDeliveryType(strings.TrimSpace(req.DeliveryType))
	if err != nil {
		return ordersvc.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery_type")
	}

	items := make([]ordersvc.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		entry := ordersvc.OrderItemInput{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			ImageURL:  item.ImageURL,
		}
		if item.PlantID != nil {
			id, err := parseUUIDField(*item.PlantID, "plant_id")
			if err != nil {
				return ordersvc.CreateOrderInput{}, err
			}
			entry.PlantID = &id
		}
		items = append(items, entry)
	}

	return ordersvc.CreateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryType:    deliveryType,
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
		Subtotal:        req.Subtotal,
		DeliveryFee:     req.DeliveryFee,
		Total:           req.Total,
		Notes:           req.Notes,
	}, nil
}

// CreateOrder accepts a public order submission.
func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// TrackOrder serves the redacted public tracking view.
func TrackOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		orderNumber := strings.TrimSpace(chi.URLParam(r, "orderNumber"))
		if orderNumber == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order number is required"))
			return
		}

		order, err := svc.Track(r.Context(), orderNumber)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

// AdminListOrders pages through submissions, optionally filtered by status.
func AdminListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := ordersvc.ListOrdersInput{Pagination: page}
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, err := enums.ParseOrderStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
			input.Status = &status
		}

		result, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminGetOrder loads one order by id or order number.
func AdminGetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		ref := strings.TrimSpace(chi.URLParam(r, "id"))
		if ref == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order reference is required"))
			return
		}

		order, err := svc.Get(r.Context(), ref)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminUpdateOrderStatus moves an order through its lifecycle.
func AdminUpdateOrderStatus(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		orderID, err := validators.PathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(strings.TrimSpace(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		order, err := svc.SetStatus(r.Context(), orderID, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}
