package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/forecast"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/order"
	"github.com/Ramos-Maykol/project/internal/core/domain/services"
	"github.com/Ramos-Maykol/project/internal/metrics"
)

// defaultOrderPriority is assumed when a command does not specify a priority.
const defaultOrderPriority = 1

// orderNumberFormat renders order numbers like ORD-2026-042.
const orderNumberFormat = "ORD-%d-%03d"

// CreateOrderResult carries the accepted order back to the caller together
// with the strategy that produced its duration estimate.
type CreateOrderResult struct {
	Order  *order.Order
	Source forecast.EstimateSource
}

// CreateOrderCommandHandler handles the business logic for order intake.
// At acceptance time the order receives its sequential number, a production
// duration estimate and a promised delivery date derived from the current
// production queue.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, estimator, scheduler)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "Maria Lopez", 3, 2, dims, 1)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
//	fmt.Printf("accepted %s, delivery %s", result.Order.OrderNumber(),
//	    result.Order.EstimatedDeliveryDate().Format("2006-01-02"))
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	estimator  *services.DurationEstimator
	scheduler  services.DeliveryScheduler
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a UoWFactory for transactional persistence, the duration estimator
// and the delivery scheduler.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	estimator *services.DurationEstimator,
	scheduler services.DeliveryScheduler,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		scheduler:  scheduler,
	}
}

// Handle processes the order intake command.
// Looks up the ordered product type, estimates the production duration,
// schedules the delivery against the active queue, assigns the next order
// number of the calendar year and persists the order atomically.
// Returns an ObjectNotFoundError when the product type does not exist.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	req, err := forecast.NewPredictionRequest(
		cmd.ProductTypeID(), cmd.Quantity(), cmd.Dimensions(), cmd.Priority())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productType, err := uow.ProductTypeRepository().Get(ctx, cmd.ProductTypeID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	hours, source := h.estimator.Predict(productType, req)

	orderRepo := uow.OrderRepository()

	activeOrders, err := orderRepo.GetAllActive(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	queueDurations := make([]float64, len(activeOrders))
	for i, active := range activeOrders {
		queueDurations[i] = active.EstimatedHours()
	}

	now := time.Now()
	estimate := h.scheduler.Schedule(hours, queueDurations, len(activeOrders), now)

	countInYear, err := orderRepo.CountInYear(ctx, now.Year())
	if err != nil {
		return CreateOrderResult{}, err
	}
	orderNumber := fmt.Sprintf(orderNumberFormat, now.Year(), countInYear+1)

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		orderNumber,
		cmd.CustomerName(),
		cmd.ProductTypeID(),
		cmd.Quantity(),
		cmd.Dimensions(),
		cmd.Priority(),
		estimate.EstimatedHours,
		estimate.EstimatedDeliveryDate,
		now,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.PredictionsTotal.WithLabelValues(string(source)).Inc()
	metrics.QueueDepth.Set(float64(len(activeOrders) + 1))

	return CreateOrderResult{Order: newOrder, Source: source}, nil
}
