package queries

import (
	"errors"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/pkg/guard"
)

var ErrGetProductionQueueQueryIsNotConstructed = errors.New(
	"GetProductionQueueQuery must be created via NewGetProductionQueueQuery constructor",
)

// GetProductionQueueQuery retrieves the active production queue: all orders
// in pending or in_progress status, highest priority first, oldest first
// within the same priority.
//
// Example:
//
//	query := NewGetProductionQueueQuery()
//	handler := NewGetProductionQueueQueryHandler(db)
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get production queue: %w", err)
//	}
//	fmt.Printf("%d orders in the queue\n", len(queue))
type GetProductionQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductionQueueQuery creates a query to retrieve the active queue.
// This is a parameterless query.
func NewGetProductionQueueQuery() GetProductionQueueQuery {
	return GetProductionQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductionQueueQueryIsNotConstructed if validation fails.
func (q GetProductionQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionQueueQueryIsNotConstructed)
}

// GetProductionQueueQueryResponse represents one queued order.
type GetProductionQueueQueryResponse struct {
	ID                    kernel.UUID
	OrderNumber           string
	CustomerName          string
	ProductTypeName       string
	Quantity              int
	Priority              int
	Status                string
	EstimatedHours        float64
	EstimatedDeliveryDate time.Time
	PlacedAt              time.Time
}
