package queries

import (
	"context"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductionQueueQueryHandler retrieves the active production workload
// from the database, joined with the product catalog for display names.
//
// Example:
//
//	handler := NewGetProductionQueueQueryHandler(db)
//	queue, err := handler.Handle(ctx, NewGetProductionQueueQuery())
//	if err != nil {
//	    log.Printf("Failed to get queue: %v", err)
//	    return err
//	}
type GetProductionQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionQueueQueryHandler creates a handler for queue queries.
// Requires a GORM database connection for query execution.
func NewGetProductionQueueQueryHandler(db *gorm.DB) GetProductionQueueQueryHandler {
	return GetProductionQueueQueryHandler{db: db}
}

// Handle executes the query to retrieve the active production queue.
// Returns pending and in-progress orders, highest priority first and oldest
// first within the same priority.
func (h GetProductionQueueQueryHandler) Handle(
	ctx context.Context,
	query GetProductionQueueQuery,
) ([]GetProductionQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetProductionQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.customer_name,
			pt.name,
			o.quantity,
			o.priority,
			o.status,
			o.estimated_hours,
			o.estimated_delivery_date,
			o.placed_at
		FROM orders o
		JOIN product_types pt ON o.product_type_id = pt.id
		WHERE o.status IN (?, ?)
		ORDER BY o.priority DESC, o.placed_at ASC
	`, order.Pending.String(), order.InProgress.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetProductionQueueQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.OrderNumber,
			&entry.CustomerName,
			&entry.ProductTypeName,
			&entry.Quantity,
			&entry.Priority,
			&entry.Status,
			&entry.EstimatedHours,
			&entry.EstimatedDeliveryDate,
			&entry.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = orderID

		queue = append(queue, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
