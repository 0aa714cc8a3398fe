package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/application/usecases/commands"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/order"
	"github.com/Ramos-Maykol/project/internal/core/ports"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRetrainer struct {
	mock.Mock
	done chan struct{}
}

func (m *MockRetrainer) Handle(ctx context.Context, cmd commands.TrainModelCommand) error {
	args := m.Called(ctx, cmd)
	if m.done != nil {
		close(m.done)
	}
	return args.Error(0)
}

func pendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	placedAt := time.Now()
	o, err := order.NewOrder(id, "ORD-2026-001", "Maria Lopez", 3, 2,
		kernel.NoDimensions(), 1, 12.0, placedAt.AddDate(0, 0, 2), placedAt)
	require.NoError(t, err)
	return o
}

func completedOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	placedAt := time.Now().Add(-48 * time.Hour)
	started := placedAt.Add(time.Hour)
	completed := started.Add(9 * time.Hour)
	o, err := order.RestoreOrder(id, "ORD-2026-001", "Maria Lopez", 3, 2,
		kernel.NoDimensions(), 1, 12.0, placedAt.AddDate(0, 0, 2),
		order.Completed, placedAt, &started, &completed, nil)
	require.NoError(t, err)
	return o
}

func TestChangeOrderStatusCommandHandler_Handle_StartProduction(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.InProgress)
	aggregate := pendingOrder(t, id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	retrainer := new(MockRetrainer)
	h := commands.NewChangeOrderStatusCommandHandler(factory, retrainer, slog.Default())

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.InProgress, aggregate.Status())
	assert.NotNil(t, aggregate.StartedAt())
	retrainer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_DeliveryTriggersRetraining(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.Delivered)
	aggregate := completedOrder(t, id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	retrainer := &MockRetrainer{done: make(chan struct{})}
	retrainer.On("Handle", mock.Anything, mock.AnythingOfType("commands.TrainModelCommand")).
		Return(nil).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, retrainer, slog.Default())

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Delivered, aggregate.Status())

	select {
	case <-retrainer.done:
	case <-time.After(2 * time.Second):
		t.Fatal("retraining was not triggered")
	}
	retrainer.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_RetrainingFailureDoesNotAffectResult(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.Delivered)
	aggregate := completedOrder(t, id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	repo.On("Get", mock.Anything, id).Return(aggregate, nil)
	repo.On("Update", mock.Anything, aggregate).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	retrainer := &MockRetrainer{done: make(chan struct{})}
	retrainer.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewInsufficientDataError("training examples", 3, 10))

	h := commands.NewChangeOrderStatusCommandHandler(factory, retrainer, slog.Default())

	require.NoError(t, h.Handle(ctx, cmd))
	<-retrainer.done
	assert.Equal(t, order.Delivered, aggregate.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	// pending orders cannot be delivered directly
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.Delivered)
	aggregate := pendingOrder(t, id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	retrainer := new(MockRetrainer)
	h := commands.NewChangeOrderStatusCommandHandler(factory, retrainer, slog.Default())

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
	assert.Equal(t, order.Pending, aggregate.Status())
	retrainer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.InProgress)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("order id", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	retrainer := new(MockRetrainer)
	h := commands.NewChangeOrderStatusCommandHandler(factory, retrainer, slog.Default())

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestChangeOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.InProgress)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewChangeOrderStatusCommandHandler(factory, new(MockRetrainer), slog.Default())
	require.Error(t, h.Handle(ctx, cmd))
}
