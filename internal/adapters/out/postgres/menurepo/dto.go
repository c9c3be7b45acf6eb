// Package menurepo provides data transfer objects and mapping functions for menu item persistence.
package menurepo

import (
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	KitchenID       uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	PrepTimeMinutes int
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:              item.ID().Bytes(),
		KitchenID:       item.KitchenID().Bytes(),
		Name:            item.Name(),
		PrepTimeMinutes: item.PrepTimeMinutes(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kitchenID, err := kernel.UUIDFromBytes(dto.KitchenID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, kitchenID, dto.Name, dto.PrepTimeMinutes)
}
