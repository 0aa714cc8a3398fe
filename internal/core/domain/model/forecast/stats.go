package forecast

import (
	"math"
	"time"
)

// EstimateSource identifies which strategy produced a duration estimate.
type EstimateSource string

const (
	// SourceModel marks estimates produced by the trained regression ensemble.
	SourceModel EstimateSource = "model"

	// SourceFormula marks estimates produced by the deterministic fallback
	// formula, used while the model is untrained or when inference fails.
	SourceFormula EstimateSource = "formula"
)

// TrainingRun is an immutable record of one successful training pass.
type TrainingRun struct {
	Timestamp   time.Time
	SampleCount int
	Accuracy    float64
	Duration    time.Duration
}

// ModelStats is a point-in-time snapshot of the duration model's state.
// It is a read model: mutating it has no effect on the estimator.
type ModelStats struct {
	IsTrained     bool
	IsTraining    bool
	LastTrainedAt *time.Time
	Accuracy      float64
	ModelType     string
	Estimators    int
	MaxDepth      int
	SampleCount   int
	History       []TrainingRun
}

// RoundedHistory projects the training history with accuracy rounded to two
// decimals, as exposed by the stats API. Only the projection rounds; the
// underlying state keeps full precision.
func (s ModelStats) RoundedHistory() []TrainingRun {
	rounded := make([]TrainingRun, len(s.History))
	for i, run := range s.History {
		run.Accuracy = math.Round(run.Accuracy*100) / 100
		rounded[i] = run
	}
	return rounded
}

// DeliveryEstimate is the computed, non-persisted result of a delivery
// estimation: the predicted production hours, the effective backlog of the
// current queue, the promised delivery date and the position the new order
// would take in the queue.
type DeliveryEstimate struct {
	EstimatedHours        float64
	EffectiveQueueHours   float64
	EstimatedDeliveryDate time.Time
	QueuePosition         int
	Source                EstimateSource
}
