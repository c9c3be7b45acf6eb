// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// KitchenLocker serializes the capacity bucket. Locking the kitchen row
	// before counting closes the check-then-act race between concurrent
	// order creations for the same (kitchen, date, slot) bucket.
	KitchenLocker interface {
		LockKitchen(ctx context.Context, kitchenID kernel.UUID) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// KitchenRepoFactory provides access to the kitchen repository within a transaction.
	KitchenRepoFactory interface {
		KitchenRepository() ports.KitchenRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AdmissionUoW manages transactions for order admission: it spans the
	// kitchen, menu, and order repositories and carries the bucket lock.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   if err := uow.LockKitchen(ctx, kitchenID); err != nil { ... }
	//   // count, check, insert under the lock
	//
	//   err = uow.Commit(ctx)
	AdmissionUoW interface {
		TxManager
		KitchenLocker
		KitchenRepoFactory
		MenuItemRepoFactory
		OrderRepoFactory
	}

	// AdmissionUoWFactory creates new admission unit of work instances.
	AdmissionUoWFactory interface {
		Create() AdmissionUoW
	}
)
