package queries

import (
	"errors"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/errs"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves a kitchen's in-flight orders for a delivery
// date: everything not yet Completed or Cancelled, the operator's worklist.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(kitchenID, date)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	fmt.Printf("%d orders in flight\n", len(orders))
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	kitchenID    kernel.UUID
	deliveryDate kernel.DeliveryDate

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a kitchen's active orders on a
// delivery date.
func NewGetActiveOrdersQuery(kitchenID kernel.UUID, deliveryDate kernel.DeliveryDate) (GetActiveOrdersQuery, error) {
	query := GetActiveOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setKitchenID(kitchenID),
		query.setDeliveryDate(deliveryDate),
	); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// KitchenID returns the kitchen whose orders are requested.
func (q GetActiveOrdersQuery) KitchenID() kernel.UUID {
	return q.kitchenID
}

// DeliveryDate returns the delivery date to list orders for.
func (q GetActiveOrdersQuery) DeliveryDate() kernel.DeliveryDate {
	return q.deliveryDate
}

func (q *GetActiveOrdersQuery) setKitchenID(kitchenID kernel.UUID) error {
	if err := kitchenID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("kitchenID")
	}

	q.kitchenID = kitchenID
	return nil
}

func (q *GetActiveOrdersQuery) setDeliveryDate(deliveryDate kernel.DeliveryDate) error {
	if err := deliveryDate.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate", err)
	}

	q.deliveryDate = deliveryDate
	return nil
}

// GetActiveOrdersQueryResponse is one in-flight order of the requested
// kitchen and date.
type GetActiveOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	TimeSlot   kernel.TimeSlot
	Status     order.Status
	Version    int
	CreatedAt  time.Time
}
