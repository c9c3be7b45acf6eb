package ports

import (
	"context"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and counting orders against
// their capacity buckets.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists a status transition of an existing order.
	// The write is conditioned on the version the aggregate was read at
	// (the aggregate increments its version on transition); a concurrent
	// writer surfaces as errs.ErrVersionIsInvalid, never as a domain
	// rejection.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountActive counts the orders in the capacity bucket identified by
	// (kitchenID, deliveryDate, timeSlot) whose status is not Cancelled.
	// Pending orders count toward capacity.
	CountActive(ctx context.Context, kitchenID kernel.UUID, date kernel.DeliveryDate, slot kernel.TimeSlot) (int, error)

	// GetActiveByKitchen retrieves the kitchen's non-terminal orders for a
	// delivery date, for operator dashboards.
	GetActiveByKitchen(ctx context.Context, kitchenID kernel.UUID, date kernel.DeliveryDate) ([]*order.Order, error)

	// GetStalePending retrieves Pending orders created before the cutoff.
	// Used by the stale-pending reporting job.
	GetStalePending(ctx context.Context, olderThan time.Time) ([]*order.Order, error)
}
