package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"
)

// ChangeOrderStatusCommandHandler moves an order through its lifecycle.
// The transition itself is decided by the order aggregate; the handler adds
// persistence, concurrency control, and the side effects a transition
// triggers (notifications and, on completion, revenue capture).
//
// Concurrent transitions on the same order are resolved by the version the
// order was read at: the repository refuses a write against a stale version
// and the losing caller gets errs.ErrVersionIsInvalid, which callers should
// treat as a retryable conflict rather than a business rejection.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, recorder, publisher, clock, logger)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Confirmed)
//
//	newStatus, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    var transitionErr *order.InvalidStatusTransitionError
//	    if errors.As(err, &transitionErr) {
//	        // reject the request, the order stays unchanged
//	    }
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	recorder   ports.RevenueRecorder
	publisher  ports.NotificationPublisher
	now        func() time.Time
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for order lifecycle
// transitions. now supplies notification timestamps (nil means time.Now).
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	recorder ports.RevenueRecorder,
	publisher ports.NotificationPublisher,
	now func() time.Time,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		publisher:  publisher,
		now:        now,
		logger:     logger.With("component", "change_order_status_handler"),
	}
}

// Handle processes the status change command.
//
// Loads the order, asks the aggregate to transition, and persists the new
// status conditioned on the version the order was read at. Rejected
// transitions come back as *order.InvalidStatusTransitionError with the
// order unchanged. After a committed transition the handler publishes
// status-change notifications to both the customer and the kitchen, and for
// a transition into Completed captures revenue; these side effects are
// fire-and-forget and never undo the committed transition.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.UnknownStatus, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.UnknownStatus, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.UnknownStatus, err
	}

	if err = aggregate.TransitionTo(cmd.Requested()); err != nil {
		return order.UnknownStatus, err
	}

	if err = repo.UpdateStatus(ctx, aggregate); err != nil {
		return order.UnknownStatus, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.UnknownStatus, err
	}

	if aggregate.Status() == order.Completed {
		h.captureRevenue(ctx, aggregate)
	}
	h.notifyStatusChange(ctx, aggregate)

	return aggregate.Status(), nil
}

func (h *ChangeOrderStatusCommandHandler) captureRevenue(ctx context.Context, aggregate *order.Order) {
	if err := h.recorder.Capture(ctx, aggregate.ID(), aggregate.KitchenID()); err != nil {
		h.logger.ErrorContext(ctx, "revenue capture failed",
			"order_id", aggregate.ID().String(), "error", err)
		return
	}

	notification := ports.Notification{
		TargetID:   aggregate.CustomerID().String(),
		Audience:   ports.AudienceCustomer,
		Kind:       ports.NotificationPaymentCaptured,
		Title:      "Payment captured",
		Message:    fmt.Sprintf("Payment for order %s has been captured", aggregate.ID()),
		OccurredAt: h.now(),
	}
	if err := h.publisher.Notify(ctx, notification); err != nil {
		h.logger.WarnContext(ctx, "payment notification failed",
			"order_id", aggregate.ID().String(), "error", err)
	}
}

func (h *ChangeOrderStatusCommandHandler) notifyStatusChange(ctx context.Context, aggregate *order.Order) {
	message := fmt.Sprintf("Order %s is now %s", aggregate.ID(), aggregate.Status())

	targets := []struct {
		id       string
		audience ports.NotificationAudience
	}{
		{aggregate.CustomerID().String(), ports.AudienceCustomer},
		{aggregate.KitchenID().String(), ports.AudienceKitchen},
	}

	for _, target := range targets {
		notification := ports.Notification{
			TargetID:   target.id,
			Audience:   target.audience,
			Kind:       ports.NotificationStatusChange,
			Title:      "Order status changed",
			Message:    message,
			OccurredAt: h.now(),
		}
		if err := h.publisher.Notify(ctx, notification); err != nil {
			h.logger.WarnContext(ctx, "status change notification failed",
				"order_id", aggregate.ID().String(),
				"audience", string(target.audience), "error", err)
		}
	}
}
