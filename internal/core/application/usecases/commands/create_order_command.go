package commands

import (
	"errors"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrProductTypeIsRequired  = errors.New("product type id must be greater than 0")
	ErrQuantityIsInvalid      = errors.New("quantity must be greater than 0")
	ErrPriorityIsInvalid      = errors.New("priority must be greater than 0")
)

// CreateOrderCommand represents a request to accept a new production order.
// Encapsulates the customer, the catalog product, the requested quantity and
// the optional physical dimensions and priority.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	dims, _ := kernel.NewDimensions(100, 50, 30)
//	cmd, err := NewCreateOrderCommand(orderID, "Maria Lopez", 3, 2, dims, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, estimator, scheduler)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	productTypeID int
	quantity      int
	dimensions    kernel.Dimensions
	priority      int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to accept a new production order.
// Priority 0 is replaced by the default priority. Returns an error if any
// validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	productTypeID int,
	quantity int,
	dimensions kernel.Dimensions,
	priority int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setProductTypeID(productTypeID),
		cmd.setQuantity(quantity),
		cmd.setDimensions(dimensions),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the name of the ordering customer.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// ProductTypeID returns the catalog id of the ordered product.
func (c CreateOrderCommand) ProductTypeID() int {
	return c.productTypeID
}

// Quantity returns the ordered number of units.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Dimensions returns the requested physical measures.
func (c CreateOrderCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

// Priority returns the production priority.
func (c CreateOrderCommand) Priority() int {
	return c.priority
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setProductTypeID(productTypeID int) error {
	if productTypeID <= 0 {
		return ErrProductTypeIsRequired
	}

	c.productTypeID = productTypeID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *CreateOrderCommand) setPriority(priority int) error {
	if priority == 0 {
		c.priority = defaultOrderPriority
		return nil
	}
	if priority < 0 {
		return ErrPriorityIsInvalid
	}

	c.priority = priority
	return nil
}
