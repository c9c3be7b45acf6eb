// Package http exposes the order admission engine over REST.
//
// Status codes follow the nature of the failure: malformed input is 400,
// a missing kitchen, dish, or order is 404, a rejected admission or an
// illegal status transition is 422 with the structured reason, a concurrent
// status change is 409, anything else is 500.
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/application/usecases/commands"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/application/usecases/queries"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/services"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	validateOrderHandler       commands.ValidateOrderCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	getSlotAvailabilityHandler queries.GetSlotAvailabilityQueryHandler
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	validateOrderHandler commands.ValidateOrderCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getSlotAvailabilityHandler queries.GetSlotAvailabilityQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		validateOrderHandler:       validateOrderHandler,
		createOrderHandler:         createOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		getSlotAvailabilityHandler: getSlotAvailabilityHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders/validate", s.ValidateOrder)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/kitchens/:id/availability", s.GetSlotAvailability)
	api.GET("/kitchens/:id/orders", s.GetActiveOrders)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderCandidateRequest is the shared candidate-order payload.
type OrderCandidateRequest struct {
	KitchenID    string   `json:"kitchen_id"`
	MenuItemIDs  []string `json:"menu_item_ids"`
	DeliveryDate string   `json:"delivery_date"`
	TimeSlot     string   `json:"time_slot"`
}

// ValidationResponse reports an admission decision.
type ValidationResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderCandidateRequest
	CustomerID string `json:"customer_id"`
}

// CreateOrderResponse is returned when an order was admitted.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// ChangeStatusRequest is the payload for POST /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeStatusResponse reports the status after the transition.
type ChangeStatusResponse struct {
	Status string `json:"status"`
}

// SlotAvailability is one slot of an availability listing.
type SlotAvailability struct {
	Slot              string `json:"slot"`
	Label             string `json:"label"`
	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remaining_capacity"`
	Reason            string `json:"reason,omitempty"`
}

// ActiveOrder is one entry of a kitchen's active order listing.
type ActiveOrder struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	TimeSlot   string `json:"time_slot"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ValidateOrder handles POST /api/v1/orders/validate - checks a candidate
// order without persisting anything.
func (s *Server) ValidateOrder(ctx echo.Context) error {
	var request OrderCandidateRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := parseCandidate(request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.validateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, validationResponse(result))
}

// CreateOrder handles POST /api/v1/orders - admits a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	candidate, err := parseCandidate(request.OrderCandidateRequest)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer_id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID,
		candidate.KitchenID(), candidate.MenuItemIDs(), candidate.DeliveryDate(), candidate.TimeSlot(),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}
	if !result.Valid {
		return ctx.JSON(http.StatusUnprocessableEntity, validationResponse(result))
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID: orderID.String(),
		Status:  order.Pending.String(),
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requested, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+request.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, requested)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	newStatus, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ChangeStatusResponse{Status: newStatus.String()})
}

// GetSlotAvailability handles GET /api/v1/kitchens/:id/availability.
// Query parameters: date (YYYY-MM-DD) and menu_item_ids (comma separated).
func (s *Server) GetSlotAvailability(ctx echo.Context) error {
	kitchenID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid kitchen id")
	}

	date, err := kernel.ParseDeliveryDate(ctx.QueryParam("date"))
	if err != nil {
		return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
	}

	itemIDs, err := parseUUIDList(ctx.QueryParam("menu_item_ids"))
	if err != nil {
		return badRequest(ctx, "Invalid menu_item_ids")
	}

	query, err := queries.NewGetSlotAvailabilityQuery(kitchenID, itemIDs, date)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	slots, err := s.getSlotAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]SlotAvailability, len(slots))
	for i, slot := range slots {
		response[i] = SlotAvailability{
			Slot:              slot.Slot.String(),
			Label:             slot.Label,
			Available:         slot.Available,
			RemainingCapacity: slot.RemainingCapacity,
			Reason:            slot.Reason,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/kitchens/:id/orders.
// Query parameter: date (YYYY-MM-DD).
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	kitchenID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid kitchen id")
	}

	date, err := kernel.ParseDeliveryDate(ctx.QueryParam("date"))
	if err != nil {
		return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
	}

	query, err := queries.NewGetActiveOrdersQuery(kitchenID, date)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID.String(),
			TimeSlot:   o.TimeSlot.String(),
			Status:     o.Status.String(),
			CreatedAt:  o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseCandidate(request OrderCandidateRequest) (commands.ValidateOrderCommand, error) {
	kitchenID, err := kernel.UUIDFromString(request.KitchenID)
	if err != nil {
		return commands.ValidateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("kitchen_id", err)
	}

	itemIDs := make([]kernel.UUID, 0, len(request.MenuItemIDs))
	for _, raw := range request.MenuItemIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return commands.ValidateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("menu_item_ids", idErr)
		}
		itemIDs = append(itemIDs, id)
	}

	date, err := kernel.ParseDeliveryDate(request.DeliveryDate)
	if err != nil {
		return commands.ValidateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("delivery_date", err)
	}

	slot, err := kernel.TimeSlotFromString(request.TimeSlot)
	if err != nil {
		return commands.ValidateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("time_slot", err)
	}

	return commands.NewValidateOrderCommand(kitchenID, itemIDs, date, slot)
}

func parseUUIDList(raw string) ([]kernel.UUID, error) {
	parts := strings.Split(raw, ",")
	ids := make([]kernel.UUID, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := kernel.UUIDFromString(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func validationResponse(result commands.ValidationResult) ValidationResponse {
	response := ValidationResponse{Valid: result.Valid}
	if result.Rejection != nil {
		response.Reason = result.Rejection.Error()
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "The order was modified concurrently, retry the request",
		})
	case errors.Is(err, order.ErrInvalidStatusTransition), services.IsAdmissionRejection(err):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
