package menurepo

import (
	"context"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/menu"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Add saves a new menu item to the database.
func (r *GormMenuItemRepository) Add(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByIDs retrieves the menu items for all given identifiers.
// Fails with a not-found error naming the first missing id: an admission
// decision over a half-resolved dish list would be meaningless.
func (r *GormMenuItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]MenuItemDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	items := make([]*menu.Item, 0, len(ids))
	for _, id := range ids {
		dto, ok := found[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menuItem", id.String())
		}

		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
