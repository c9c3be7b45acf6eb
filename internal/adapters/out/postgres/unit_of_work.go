// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// The admission flow leans on it in one specific way: LockKitchen takes an
// exclusive row lock on the kitchen before the capacity bucket is counted,
// so that two concurrent order creations for the same kitchen serialize and
// the count-check-insert sequence cannot overshoot the capacity ceiling.
//
// Basic transaction management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.LockKitchen(ctx, kitchenID); err != nil {
//	    return err
//	}
//	// count the bucket, run the checks, insert the order
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"errors"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/postgres/kitchenrepo"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/postgres/menurepo"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/postgres/orderrepo"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// LockKitchen takes an exclusive row lock (SELECT ... FOR UPDATE) on the
// kitchen for the duration of the transaction. Every writer of a kitchen's
// capacity buckets must take this lock before counting; the lock, not the
// count, is what keeps concurrent admissions from overshooting.
// Requires an active transaction.
func (uow *GormUnitOfWork) LockKitchen(ctx context.Context, kitchenID kernel.UUID) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if err := kitchenID.Validate(); err != nil {
		return err
	}

	var dto kitchenrepo.KitchenDTO
	err := uow.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", kitchenID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("kitchen", kitchenID.String())
		}
		return err
	}

	return nil
}

// KitchenRepository provides access to kitchen persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) KitchenRepository() ports.KitchenRepository {
	return kitchenrepo.NewGormKitchenRepository(uow.conn(), uow)
}

// MenuItemRepository provides access to menu item persistence operations within the unit of work.
func (uow *GormUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return menurepo.NewGormMenuItemRepository(uow.conn())
}

// OrderRepository provides access to order persistence operations within the unit of work.
// The returned repository automatically tracks all order aggregates that are
// added or updated, making them available to post-commit processing.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is typically called by repository implementations when aggregates
// are added, updated, or otherwise modified.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
