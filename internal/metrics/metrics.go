// Package metrics exposes the Prometheus collectors of the order intake
// service. Collectors are registered on the default registry at package load
// and are safe for concurrent use.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prediction source label values.
const (
	SourceModel   = "model"
	SourceFormula = "formula"
)

var (
	// PredictionsTotal counts duration estimates by the strategy that
	// produced them.
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forecast_predictions_total",
		Help: "Total number of production duration estimates by source.",
	}, []string{"source"})

	// TrainingRunsTotal counts successful model training passes.
	TrainingRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_training_runs_total",
		Help: "Total number of successful model training runs.",
	})

	// TrainingFailuresTotal counts training passes that returned an error,
	// including insufficient-data rejections.
	TrainingFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_training_failures_total",
		Help: "Total number of failed model training runs.",
	})

	// TrainingDuration observes the wall-clock duration of training passes.
	TrainingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "forecast_training_duration_seconds",
		Help:    "Duration of model training runs in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})

	// OrdersCreatedTotal counts orders accepted at intake.
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders accepted at intake.",
	})

	// OrderStatusChangesTotal counts lifecycle transitions by target status.
	OrderStatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_changes_total",
		Help: "Total number of order status transitions by target status.",
	}, []string{"status"})

	// QueueDepth tracks the number of active orders in the production queue.
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "production_queue_depth",
		Help: "Number of pending and in-progress orders.",
	})
)
