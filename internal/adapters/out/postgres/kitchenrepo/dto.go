// Package kitchenrepo provides data transfer objects and mapping functions for kitchen persistence.
package kitchenrepo

import (
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kitchen"

	"github.com/google/uuid"
)

// KitchenDTO represents the database structure for persisting kitchen aggregates.
type KitchenDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string
	MaxCapacity      int
	MinPrepTimeHours float64
}

// TableName specifies the database table name for kitchen entities.
func (KitchenDTO) TableName() string {
	return "kitchens"
}

func fromDomain(aggregate *kitchen.Kitchen) KitchenDTO {
	return KitchenDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		MaxCapacity:      aggregate.MaxCapacity(),
		MinPrepTimeHours: aggregate.MinPrepTimeHours(),
	}
}

func toDomain(dto KitchenDTO) (*kitchen.Kitchen, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return kitchen.RestoreKitchen(id, dto.Name, dto.MaxCapacity, dto.MinPrepTimeHours)
}
