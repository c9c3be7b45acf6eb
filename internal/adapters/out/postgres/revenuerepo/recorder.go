// Package revenuerepo records completed orders in the revenue ledger.
// Pricing and settlement live in the billing system; this ledger only marks
// which orders have become revenue-bearing.
package revenuerepo

import (
	"context"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevenueEntryDTO is one row of the revenue ledger.
type RevenueEntryDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	KitchenID  uuid.UUID `gorm:"type:uuid;index"`
	CapturedAt time.Time
}

// TableName specifies the database table name for revenue entries.
func (RevenueEntryDTO) TableName() string {
	return "revenue_entries"
}

// GormRevenueRecorder implements RevenueRecorder on the revenue ledger table.
type GormRevenueRecorder struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormRevenueRecorder creates a recorder writing to the revenue ledger.
// now supplies capture timestamps (nil means time.Now).
func NewGormRevenueRecorder(db *gorm.DB, now func() time.Time) *GormRevenueRecorder {
	if now == nil {
		now = time.Now
	}
	return &GormRevenueRecorder{db: db, now: now}
}

// Capture inserts a ledger entry for the order. The order id is the primary
// key and conflicting inserts are ignored, which makes Capture idempotent:
// replaying a completion cannot double-count revenue.
func (r *GormRevenueRecorder) Capture(ctx context.Context, orderID, kitchenID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := kitchenID.Validate(); err != nil {
		return err
	}

	entry := RevenueEntryDTO{
		OrderID:    orderID.Bytes(),
		KitchenID:  kitchenID.Bytes(),
		CapturedAt: r.now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry).Error
}
