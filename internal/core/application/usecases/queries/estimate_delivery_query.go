// Package queries contains read operations of the CQRS architecture.
// Query handlers read the database directly with raw SQL, bypassing the
// aggregate repositories, and return plain response structs.
package queries

import (
	"errors"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/forecast"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"
	"github.com/Ramos-Maykol/project/internal/pkg/guard"
)

var ErrEstimateDeliveryQueryIsNotConstructed = errors.New(
	"EstimateDeliveryQuery must be created via NewEstimateDeliveryQuery constructor",
)

// EstimateDeliveryQuery computes a delivery promise for a prospective order
// without persisting anything. Used by the intake form to preview the
// delivery date before the order is placed.
//
// Example:
//
//	query, err := NewEstimateDeliveryQuery(3, 2, 100, 50, 30, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid estimation request: %w", err)
//	}
//
//	handler := NewEstimateDeliveryQueryHandler(db, estimator, scheduler)
//	estimate, err := handler.Handle(ctx, query)
type EstimateDeliveryQuery struct { //nolint:recvcheck //using for validation
	productTypeID int
	quantity      int
	dimensions    kernel.Dimensions
	priority      int

	guard guard.ConstructorGuard
}

// NewEstimateDeliveryQuery creates a delivery estimation query.
// Product type and quantity are mandatory; dimensions default to zero and
// priority 0 is replaced by the default priority.
func NewEstimateDeliveryQuery(
	productTypeID int,
	quantity int,
	width, height, depth float64,
	priority int,
) (EstimateDeliveryQuery, error) {
	if productTypeID <= 0 {
		return EstimateDeliveryQuery{}, errs.NewValueIsRequiredError("product_type_id")
	}
	if quantity <= 0 {
		return EstimateDeliveryQuery{}, errs.NewValueIsRequiredError("quantity")
	}

	dimensions, err := kernel.NewDimensions(width, height, depth)
	if err != nil {
		return EstimateDeliveryQuery{}, err
	}

	if priority == 0 {
		priority = forecast.DefaultPriority
	}

	return EstimateDeliveryQuery{
		productTypeID: productTypeID,
		quantity:      quantity,
		dimensions:    dimensions,
		priority:      priority,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrEstimateDeliveryQueryIsNotConstructed if validation fails.
func (q EstimateDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryQueryIsNotConstructed)
}

// ProductTypeID returns the catalog id of the requested product.
func (q EstimateDeliveryQuery) ProductTypeID() int {
	return q.productTypeID
}

// Quantity returns the requested number of units.
func (q EstimateDeliveryQuery) Quantity() int {
	return q.quantity
}

// Dimensions returns the requested physical measures.
func (q EstimateDeliveryQuery) Dimensions() kernel.Dimensions {
	return q.dimensions
}

// Priority returns the requested production priority.
func (q EstimateDeliveryQuery) Priority() int {
	return q.priority
}

// EstimateDeliveryQueryResponse carries the computed delivery promise.
type EstimateDeliveryQueryResponse struct {
	EstimatedHours        float64
	EffectiveQueueHours   float64
	EstimatedDeliveryDate time.Time
	QueuePosition         int
	Source                forecast.EstimateSource
}
