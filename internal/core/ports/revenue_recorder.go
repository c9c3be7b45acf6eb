package ports

import (
	"context"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
)

// RevenueRecorder captures revenue for a completed order. Pricing and
// payment processing live outside this engine; the recorder only marks the
// order as revenue-bearing so the billing system can settle it. Capture is
// idempotent per order.
type RevenueRecorder interface {
	Capture(ctx context.Context, orderID, kitchenID kernel.UUID) error
}
