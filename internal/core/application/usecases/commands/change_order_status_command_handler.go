package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/order"
	"github.com/Ramos-Maykol/project/internal/metrics"
)

// ChangeOrderStatusCommandHandler advances orders through the production
// lifecycle and keeps the duration model fresh: when an order reaches
// Delivered, a training pass is fired in the background since a new labeled
// example just became available.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, retrainer, logger)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Delivered)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
//	// The order is delivered; model retraining runs in the background.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	retrainer  ModelRetrainer
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for lifecycle transitions.
// Requires an OrderUoWFactory for transactional persistence and a
// ModelRetrainer for background training after deliveries.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	retrainer ModelRetrainer,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		retrainer:  retrainer,
		logger:     logger.With("component", "change_order_status"),
	}
}

// Handle processes the status change command.
// Loads the order, applies the transition with the current timestamp and
// persists the result atomically. Transition rules are enforced by the
// aggregate; an out-of-order request surfaces its validation error.
//
// The delivery transition additionally triggers a background model training
// pass. Its outcome never affects the command result: a failure is logged
// and the delivered order stays delivered.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	switch cmd.TargetStatus() {
	case order.InProgress:
		err = aggregate.StartProduction(now)
	case order.Completed:
		err = aggregate.CompleteProduction(now)
	case order.Delivered:
		err = aggregate.Deliver(now)
	case order.Unknown, order.Pending:
		err = ErrTargetStatusIsInvalid
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrderStatusChangesTotal.WithLabelValues(cmd.TargetStatus().String()).Inc()

	if cmd.TargetStatus() == order.Delivered {
		go h.retrain(aggregate.OrderNumber())
	}

	return nil
}

// retrain runs a training pass detached from the request that triggered it.
// A fresh background context is used so the pass survives the HTTP request.
func (h *ChangeOrderStatusCommandHandler) retrain(orderNumber string) {
	trainCmd := NewTrainModelCommand()

	if err := h.retrainer.Handle(context.Background(), trainCmd); err != nil {
		h.logger.Warn("background retraining failed",
			"order_number", orderNumber,
			"error", err)
		return
	}

	h.logger.Info("model retrained after delivery", "order_number", orderNumber)
}
