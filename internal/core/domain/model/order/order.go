package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer production order. It is the aggregate root that
// manages the order lifecycle from intake through production to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Quantity must be positive, priority at least 1
//   - Dimensions must be a constructed value (possibly without measures)
//   - The estimated production time is at least half an hour
//   - Status transitions follow the production workflow and stamp their
//     respective timestamps exactly once
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-facing sequence number, e.g. "ORD-2026-014"
	orderNumber string

	// customerName identifies who placed the order
	customerName string

	// productTypeID references the catalog entry being manufactured
	productTypeID int

	// quantity is the number of units ordered (must be positive)
	quantity int

	// dimensions carries the requested physical measures
	dimensions kernel.Dimensions

	// priority orders the production queue; 1 is the default
	priority int

	// estimatedHours is the predicted production duration captured at intake
	estimatedHours float64

	// estimatedDeliveryDate is the delivery date promised at intake
	estimatedDeliveryDate time.Time

	// status is the current state in the order lifecycle
	status Status

	// placedAt is when the order entered the system
	placedAt time.Time

	// startedAt/completedAt/deliveredAt are stamped by the status transitions
	startedAt   *time.Time
	completedAt *time.Time
	deliveredAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way (besides RestoreOrder) to obtain a valid Order.
//
// estimatedHours and estimatedDeliveryDate come from the forecasting engine at
// intake time; the aggregate stores them verbatim and never recomputes them.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	productTypeID int,
	quantity int,
	dimensions kernel.Dimensions,
	priority int,
	estimatedHours float64,
	estimatedDeliveryDate time.Time,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerName(customerName),
		o.setProductTypeID(productTypeID),
		o.setQuantity(quantity),
		o.setDimensions(dimensions),
		o.setPriority(priority),
		o.setEstimate(estimatedHours, estimatedDeliveryDate),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status
// and lifecycle timestamps. The status must be valid and consistent with the
// timestamps that were stamped by its transitions.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	productTypeID int,
	quantity int,
	dimensions kernel.Dimensions,
	priority int,
	estimatedHours float64,
	estimatedDeliveryDate time.Time,
	status Status,
	placedAt time.Time,
	startedAt, completedAt, deliveredAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, customerName, productTypeID, quantity,
		dimensions, priority, estimatedHours, estimatedDeliveryDate, placedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.startedAt = startedAt
	o.completedAt = completedAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct, and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ProductTypeID returns the catalog id of the ordered product.
func (o *Order) ProductTypeID() int {
	return o.productTypeID
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Dimensions returns the requested physical measures.
func (o *Order) Dimensions() kernel.Dimensions {
	return o.dimensions
}

// Priority returns the production priority (1 is the default).
func (o *Order) Priority() int {
	return o.priority
}

// EstimatedHours returns the production duration predicted at intake.
func (o *Order) EstimatedHours() float64 {
	return o.estimatedHours
}

// EstimatedDeliveryDate returns the delivery date promised at intake.
func (o *Order) EstimatedDeliveryDate() time.Time {
	return o.estimatedDeliveryDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns when the order entered the system.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// StartedAt returns when production started, nil if it has not.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// CompletedAt returns when production finished, nil if it has not.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// DeliveredAt returns when the order was delivered, nil if it has not been.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// StartProduction transitions the order to InProgress and stamps the
// production start time. The order must be Pending.
func (o *Order) StartProduction(at time.Time) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.startedAt = &at
	return nil
}

// CompleteProduction transitions the order to Completed and stamps the
// completion time. The order must be InProgress.
func (o *Order) CompleteProduction(at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &at
	return nil
}

// Deliver transitions the order to the terminal Delivered status and stamps
// the delivery time. The order must be Completed. Once delivered, the order
// becomes eligible as a training example for the duration model.
func (o *Order) Deliver(at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &at
	return nil
}

// ProductionDuration returns the wall-clock hours production actually took.
// The second return value is false unless both the start and completion
// timestamps are present and completion is strictly after start — the
// precondition for the order to serve as a training label.
func (o *Order) ProductionDuration() (float64, bool) {
	if o.startedAt == nil || o.completedAt == nil {
		return 0, false
	}
	if !o.completedAt.After(*o.startedAt) {
		return 0, false
	}
	return o.completedAt.Sub(*o.startedAt).Hours(), true
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the human-facing order number.
func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomerName validates and sets the customer name.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = customerName
	return nil
}

// setProductTypeID validates and sets the catalog reference.
func (o *Order) setProductTypeID(productTypeID int) error {
	if productTypeID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product type id",
			fmt.Errorf("%d is not greater than 0", productTypeID))
	}
	o.productTypeID = productTypeID
	return nil
}

// setQuantity validates and sets the ordered quantity.
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

// setDimensions validates and sets the physical measures.
func (o *Order) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	o.dimensions = dimensions
	return nil
}

// setPriority validates and sets the production priority.
func (o *Order) setPriority(priority int) error {
	if priority < 1 {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is less than 1", priority))
	}
	o.priority = priority
	return nil
}

// setEstimate validates and sets the intake-time forecast.
func (o *Order) setEstimate(estimatedHours float64, estimatedDeliveryDate time.Time) error {
	if estimatedHours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated hours",
			fmt.Errorf("%v is not greater than 0", estimatedHours))
	}
	if estimatedDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("estimated delivery date")
	}
	o.estimatedHours = estimatedHours
	o.estimatedDeliveryDate = estimatedDeliveryDate
	return nil
}

// setPlacedAt validates and sets the intake timestamp.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placed at")
	}
	o.placedAt = placedAt
	return nil
}
