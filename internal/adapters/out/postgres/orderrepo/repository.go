package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatus persists a status transition of an existing order.
// The aggregate arrives with its version already incremented by the
// transition, so the write matches rows at version-1. Zero matched rows
// means a concurrent writer got there first (or the order vanished); both
// surface as a version conflict for the caller to retry.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version-1).
		Updates(map[string]any{
			"status":  dto.Status,
			"version": dto.Version,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("order")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountActive counts the orders occupying the capacity bucket
// (kitchenID, date, slot). Cancelled orders release their slot; every other
// status, including Pending, holds one.
func (r *GormOrderRepository) CountActive(
	ctx context.Context,
	kitchenID kernel.UUID,
	date kernel.DeliveryDate,
	slot kernel.TimeSlot,
) (int, error) {
	if err := kitchenID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("kitchen_id = ? AND delivery_date = ? AND time_slot = ? AND status != ?",
			kitchenID.Bytes(), date.String(), int(slot), int(order.Cancelled)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GetActiveByKitchen retrieves the kitchen's non-terminal orders for a delivery date.
func (r *GormOrderRepository) GetActiveByKitchen(
	ctx context.Context,
	kitchenID kernel.UUID,
	date kernel.DeliveryDate,
) ([]*order.Order, error) {
	if err := kitchenID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("kitchen_id = ? AND delivery_date = ? AND status NOT IN (?, ?)",
			kitchenID.Bytes(), date.String(), int(order.Completed), int(order.Cancelled)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetStalePending retrieves Pending orders created before the cutoff.
func (r *GormOrderRepository) GetStalePending(ctx context.Context, olderThan time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", int(order.Pending), olderThan).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
