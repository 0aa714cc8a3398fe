package order_test

import (
	"testing"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/order"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder(t *testing.T) *order.Order {
	t.Helper()
	placedAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-2026-001",
		"Maria Lopez",
		3,
		2,
		kernel.NoDimensions(),
		1,
		12.0,
		placedAt.AddDate(0, 0, 2),
		placedAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order_starts_pending", func(t *testing.T) {
		o := validOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "ORD-2026-001", o.OrderNumber())
		assert.Equal(t, "Maria Lopez", o.CustomerName())
		assert.Equal(t, 3, o.ProductTypeID())
		assert.Equal(t, 2, o.Quantity())
		assert.Equal(t, 1, o.Priority())
		assert.Equal(t, 12.0, o.EstimatedHours())
		assert.Nil(t, o.StartedAt())
		assert.Nil(t, o.CompletedAt())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("invalid_inputs", func(t *testing.T) {
		placedAt := time.Now()
		deliveryDate := placedAt.AddDate(0, 0, 2)
		id := kernel.NewUUID()
		dims := kernel.NoDimensions()

		cases := []struct {
			name string
			run  func() error
		}{
			{"zero_id", func() error {
				_, err := order.NewOrder(kernel.UUID{}, "ORD-1", "c", 1, 1, dims, 1, 1, deliveryDate, placedAt)
				return err
			}},
			{"empty_order_number", func() error {
				_, err := order.NewOrder(id, "", "c", 1, 1, dims, 1, 1, deliveryDate, placedAt)
				return err
			}},
			{"empty_customer", func() error {
				_, err := order.NewOrder(id, "ORD-1", "", 1, 1, dims, 1, 1, deliveryDate, placedAt)
				return err
			}},
			{"zero_product_type", func() error {
				_, err := order.NewOrder(id, "ORD-1", "c", 0, 1, dims, 1, 1, deliveryDate, placedAt)
				return err
			}},
			{"zero_quantity", func() error {
				_, err := order.NewOrder(id, "ORD-1", "c", 1, 0, dims, 1, 1, deliveryDate, placedAt)
				return err
			}},
			{"unconstructed_dimensions", func() error {
				_, err := order.NewOrder(id, "ORD-1", "c", 1, 1, kernel.Dimensions{}, 1, 1, deliveryDate, placedAt)
				return err
			}},
			{"zero_priority", func() error {
				_, err := order.NewOrder(id, "ORD-1", "c", 1, 1, dims, 0, 1, deliveryDate, placedAt)
				return err
			}},
			{"zero_estimated_hours", func() error {
				_, err := order.NewOrder(id, "ORD-1", "c", 1, 1, dims, 1, 0, deliveryDate, placedAt)
				return err
			}},
			{"zero_delivery_date", func() error {
				_, err := order.NewOrder(id, "ORD-1", "c", 1, 1, dims, 1, 1, time.Time{}, placedAt)
				return err
			}},
			{"zero_placed_at", func() error {
				_, err := order.NewOrder(id, "ORD-1", "c", 1, 1, dims, 1, 1, deliveryDate, time.Time{})
				return err
			}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				require.Error(t, tc.run())
			})
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full_lifecycle_stamps_timestamps", func(t *testing.T) {
		o := validOrder(t)
		start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		complete := start.Add(9 * time.Hour)
		deliver := complete.Add(24 * time.Hour)

		require.NoError(t, o.StartProduction(start))
		assert.Equal(t, order.InProgress, o.Status())
		require.NotNil(t, o.StartedAt())
		assert.Equal(t, start, *o.StartedAt())

		require.NoError(t, o.CompleteProduction(complete))
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.CompletedAt())

		require.NoError(t, o.Deliver(deliver))
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
	})

	t.Run("transitions_enforce_ordering", func(t *testing.T) {
		o := validOrder(t)
		now := time.Now()

		require.ErrorIs(t, o.CompleteProduction(now), errs.ErrValueIsInvalid)
		require.ErrorIs(t, o.Deliver(now), errs.ErrValueIsInvalid)

		require.NoError(t, o.StartProduction(now))
		require.ErrorIs(t, o.StartProduction(now), errs.ErrValueIsInvalid)
	})
}

func TestOrder_ProductionDuration(t *testing.T) {
	t.Run("returns_hours_between_start_and_completion", func(t *testing.T) {
		o := validOrder(t)
		start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

		require.NoError(t, o.StartProduction(start))
		require.NoError(t, o.CompleteProduction(start.Add(90*time.Minute)))

		hours, ok := o.ProductionDuration()
		require.True(t, ok)
		assert.InDelta(t, 1.5, hours, 1e-9)
	})

	t.Run("not_available_before_completion", func(t *testing.T) {
		o := validOrder(t)

		_, ok := o.ProductionDuration()
		assert.False(t, ok)

		require.NoError(t, o.StartProduction(time.Now()))
		_, ok = o.ProductionDuration()
		assert.False(t, ok)
	})

	t.Run("completion_not_after_start_is_rejected", func(t *testing.T) {
		start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-2026-002", "c", 1, 1, kernel.NoDimensions(),
			1, 2.0, start.AddDate(0, 0, 1), order.Completed, start, &start, &start, nil,
		)
		require.NoError(t, err)

		_, ok := o.ProductionDuration()
		assert.False(t, ok)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_status_and_timestamps", func(t *testing.T) {
		placedAt := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
		start := placedAt.Add(time.Hour)
		complete := start.Add(8 * time.Hour)
		deliver := complete.Add(48 * time.Hour)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-2026-003", "Jorge Ramos", 2, 4, kernel.NoDimensions(),
			3, 16.0, placedAt.AddDate(0, 0, 2), order.Delivered, placedAt,
			&start, &complete, &deliver,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, 3, o.Priority())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliver, *o.DeliveredAt())
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		placedAt := time.Now()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-2026-004", "c", 1, 1, kernel.NoDimensions(),
			1, 2.0, placedAt.AddDate(0, 0, 1), order.Unknown, placedAt, nil, nil, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := validOrder(t)
	b := validOrder(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
