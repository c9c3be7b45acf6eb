package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"
)

// NotifyStalePendingCommandHandler finds Pending orders older than the
// configured threshold and nudges their kitchens. The orders themselves are
// left untouched: a Pending order never expires on its own and keeps
// counting toward its capacity bucket until the kitchen confirms or cancels
// it.
type NotifyStalePendingCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
	staleAfter time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// NewNotifyStalePendingCommandHandler creates a handler for the stale
// pending sweep. staleAfter is how long an order may sit in Pending before
// its kitchen is nudged; now supplies the current time (nil means time.Now).
func NewNotifyStalePendingCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
	staleAfter time.Duration,
	now func() time.Time,
	logger *slog.Logger,
) NotifyStalePendingCommandHandler {
	if now == nil {
		now = time.Now
	}
	return NotifyStalePendingCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		staleAfter: staleAfter,
		now:        now,
		logger:     logger.With("component", "notify_stale_pending_handler"),
	}
}

// Handle processes the stale pending sweep.
// Publishes one notification per stale order; a failed publish is logged and
// the sweep moves on so one broken delivery does not starve the rest.
func (h *NotifyStalePendingCommandHandler) Handle(ctx context.Context, cmd NotifyStalePendingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := h.now().Add(-h.staleAfter)
	stale, err := uow.OrderRepository().GetStalePending(ctx, cutoff)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range stale {
		notification := ports.Notification{
			TargetID: aggregate.KitchenID().String(),
			Audience: ports.AudienceKitchen,
			Kind:     ports.NotificationStalePending,
			Title:    "Order awaiting confirmation",
			Message: fmt.Sprintf("Order %s has been pending since %s and needs a decision",
				aggregate.ID(), aggregate.CreatedAt().Format(time.RFC3339)),
			OccurredAt: h.now(),
		}
		if err := h.publisher.Notify(ctx, notification); err != nil {
			h.logger.WarnContext(ctx, "stale pending notification failed",
				"order_id", aggregate.ID().String(), "error", err)
		}
	}

	if len(stale) > 0 {
		h.logger.InfoContext(ctx, "stale pending sweep finished", "stale_orders", len(stale))
	}

	return nil
}
