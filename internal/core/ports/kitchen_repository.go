package ports

import (
	"context"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kitchen"
)

// KitchenRepository defines the persistence contract for kitchen aggregates.
// The engine reads kitchens; Add exists for registration flows and tests.
type KitchenRepository interface {
	// Add persists a new kitchen aggregate to storage.
	Add(ctx context.Context, aggregate *kitchen.Kitchen) error

	// Get retrieves a kitchen by its unique identifier.
	// An absent kitchen surfaces as errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*kitchen.Kitchen, error)
}
