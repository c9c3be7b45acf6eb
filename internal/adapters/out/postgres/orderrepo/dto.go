// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composite index on (kitchen_id, delivery_date, time_slot) is the
// capacity bucket: admission counts rows against exactly that key.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;index"`
	KitchenID    uuid.UUID      `gorm:"type:uuid;index:idx_capacity_bucket"`
	MenuItemIDs  pq.StringArray `gorm:"type:text[]"`
	DeliveryDate string         `gorm:"type:varchar(10);index:idx_capacity_bucket"`
	TimeSlot     int            `gorm:"index:idx_capacity_bucket"`
	Status       int            `gorm:"index"`
	Version      int
	CreatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	itemIDs := aggregate.MenuItemIDs()
	rawItemIDs := make(pq.StringArray, 0, len(itemIDs))
	for _, id := range itemIDs {
		rawItemIDs = append(rawItemIDs, id.String())
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		KitchenID:    aggregate.KitchenID().Bytes(),
		MenuItemIDs:  rawItemIDs,
		DeliveryDate: aggregate.DeliveryDate().String(),
		TimeSlot:     int(aggregate.TimeSlot()),
		Status:       int(aggregate.Status()),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and version using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	kitchenID, err := kernel.UUIDFromBytes(dto.KitchenID[:])
	if err != nil {
		return nil, err
	}

	itemIDs := make([]kernel.UUID, 0, len(dto.MenuItemIDs))
	for _, raw := range dto.MenuItemIDs {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	deliveryDate, err := kernel.ParseDeliveryDate(dto.DeliveryDate)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		kitchenID,
		itemIDs,
		deliveryDate,
		kernel.TimeSlot(dto.TimeSlot),
		order.Status(dto.Status),
		dto.Version,
		dto.CreatedAt,
	)
}
