package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/services"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order admission.
//
// The capacity check is a check-then-act over a count that other concurrent
// requests mutate. To keep a bucket from overshooting its ceiling, the
// handler performs the whole count-check-insert sequence inside one
// transaction that first takes an exclusive lock on the kitchen row: two
// concurrent creations for the same kitchen serialize on that lock, so the
// second one observes the first one's insert.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, admission, publisher, clock, logger)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, kitchenID, itemIDs, date, kernel.Lunch)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// result.Valid: the order is persisted in Pending status
type CreateOrderCommandHandler struct {
	uowFactory AdmissionUoWFactory
	admission  *services.AdmissionService
	publisher  ports.NotificationPublisher
	now        func() time.Time
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order admission.
// now supplies the acceptance timestamp (nil means time.Now).
func NewCreateOrderCommandHandler(
	uowFactory AdmissionUoWFactory,
	admission *services.AdmissionService,
	publisher ports.NotificationPublisher,
	now func() time.Time,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		admission:  admission,
		publisher:  publisher,
		now:        now,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
//
// Admission rejections come back inside the ValidationResult with the order
// left unpersisted; a non-nil error means the attempt failed for
// infrastructure reasons and may be retried by the caller. On success the
// order is persisted in Pending status and an order-received notification is
// published to the kitchen (fire-and-forget; a publish failure is logged and
// does not undo the order).
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (ValidationResult, error) {
	if err := cmd.Validate(); err != nil {
		return ValidationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ValidationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LockKitchen(ctx, cmd.KitchenID()); err != nil {
		return ValidationResult{}, err
	}

	err := runAdmissionChecks(
		ctx,
		h.admission,
		uow.KitchenRepository(),
		uow.MenuItemRepository(),
		uow.OrderRepository(),
		cmd.KitchenID(),
		cmd.MenuItemIDs(),
		cmd.DeliveryDate(),
		cmd.TimeSlot(),
	)
	if err != nil {
		return resultFromAdmission(err)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.KitchenID(),
		cmd.MenuItemIDs(),
		cmd.DeliveryDate(),
		cmd.TimeSlot(),
		h.now(),
	)
	if err != nil {
		return ValidationResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return ValidationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ValidationResult{}, err
	}

	h.notifyOrderReceived(ctx, newOrder)
	return ValidationResult{Valid: true}, nil
}

func (h *CreateOrderCommandHandler) notifyOrderReceived(ctx context.Context, newOrder *order.Order) {
	notification := ports.Notification{
		TargetID:   newOrder.KitchenID().String(),
		Audience:   ports.AudienceKitchen,
		Kind:       ports.NotificationOrderReceived,
		Title:      "New order received",
		Message: fmt.Sprintf("Order %s for %s on %s is awaiting confirmation",
			newOrder.ID(), newOrder.TimeSlot().Label(), newOrder.DeliveryDate()),
		OccurredAt: h.now(),
	}

	if err := h.publisher.Notify(ctx, notification); err != nil {
		h.logger.WarnContext(ctx, "order received notification failed",
			"order_id", newOrder.ID().String(), "error", err)
	}
}
