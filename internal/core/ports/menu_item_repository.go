package ports

import (
	"context"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item to storage.
	Add(ctx context.Context, item *menu.Item) error

	// GetByIDs retrieves the menu items for all given identifiers.
	// If any identifier is absent the whole call fails with
	// errs.ErrObjectNotFound naming the missing id.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error)
}
