package queries

import (
	"context"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/kernel"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads a kitchen's in-flight orders straight
// from the database, bypassing the aggregate layer. The read model only
// needs the columns the dashboard shows.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the kitchen's orders for the date whose
// status is neither Completed nor Cancelled, oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			time_slot,
			status,
			version,
			created_at
		FROM orders
		WHERE kitchen_id = ?
		  AND delivery_date = ?
		  AND status NOT IN (?, ?)
		ORDER BY created_at
	`, query.KitchenID().Bytes(), query.DeliveryDate().String(), int(order.Completed), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveOrdersQueryResponse
		var id, customerID uuid.UUID
		var timeSlot, status int

		err = rows.Scan(
			&id,
			&customerID,
			&timeSlot,
			&status,
			&response.Version,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.CustomerID = custID

		response.TimeSlot = kernel.TimeSlot(timeSlot)
		if err = response.TimeSlot.Validate(); err != nil {
			return nil, err
		}

		response.Status = order.Status(status)
		if err = response.Status.Validate(); err != nil {
			return nil, err
		}

		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
