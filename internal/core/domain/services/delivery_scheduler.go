package services

import (
	"math"
	"sort"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/forecast"
)

const (
	// ParallelCapacity is the number of orders the production floor works on
	// concurrently.
	ParallelCapacity = 2

	// WorkdayHours is the length of one production workday.
	WorkdayHours = 8.0
)

// DeliveryScheduler is a stateless domain service that turns a predicted
// production duration and the current queue into a delivery promise.
//
// Business rules:
//   - The floor runs ParallelCapacity orders at a time; the effective backlog
//     of a queue is the sum over batches of each batch's longest order.
//   - A delivery date counts only the new order's own production hours,
//     rounded up to whole workdays; the queue backlog is reported separately.
//   - The queue position of a new order is one past the count of active
//     (pending or in-progress) orders.
type DeliveryScheduler struct {
	parallelCapacity int
	workdayHours     float64
}

// NewDeliveryScheduler creates a DeliveryScheduler with the standard floor
// capacity and workday length.
func NewDeliveryScheduler() DeliveryScheduler {
	return DeliveryScheduler{
		parallelCapacity: ParallelCapacity,
		workdayHours:     WorkdayHours,
	}
}

// EffectiveQueueHours simulates working the queued durations on the floor.
// Durations are taken longest-first in batches of the parallel capacity, and
// each batch contributes its longest member, since the batch's shorter orders
// finish in its shadow. The input slice is not modified.
func (s DeliveryScheduler) EffectiveQueueHours(durations []float64) float64 {
	if len(durations) == 0 {
		return 0
	}

	sorted := make([]float64, len(durations))
	copy(sorted, durations)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var total float64
	for i := 0; i < len(sorted); i += s.parallelCapacity {
		total += sorted[i]
	}

	return total
}

// DaysToDelivery converts production hours into whole workdays, rounding up.
func (s DeliveryScheduler) DaysToDelivery(hours float64) int {
	return int(math.Ceil(hours / s.workdayHours))
}

// Schedule computes the delivery estimate for an order predicted to take
// predictedHours, given the durations of queued active orders and their
// count. The delivery date is now plus the order's own workdays.
func (s DeliveryScheduler) Schedule(
	predictedHours float64,
	queueDurations []float64,
	activeOrders int,
	now time.Time,
) forecast.DeliveryEstimate {
	return forecast.DeliveryEstimate{
		EstimatedHours:        predictedHours,
		EffectiveQueueHours:   s.EffectiveQueueHours(queueDurations),
		EstimatedDeliveryDate: now.AddDate(0, 0, s.DaysToDelivery(predictedHours)),
		QueuePosition:         activeOrders + 1,
	}
}
