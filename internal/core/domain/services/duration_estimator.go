package services

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/forecast"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/product"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"
	"github.com/Ramos-Maykol/project/internal/pkg/regress"
)

const (
	// MinTrainingExamples is the minimum number of delivered orders required
	// before a model can be trained.
	MinTrainingExamples = 10

	// MinEstimateHours is the floor applied to every duration estimate,
	// whether it comes from the model or from the fallback formula.
	MinEstimateHours = 0.5

	// trainSplitRatio is the share of examples used for fitting; the ordered
	// remainder is held out for the accuracy measurement.
	trainSplitRatio = 0.8

	// maxHistoryEntries bounds the retained training history. Older runs are
	// evicted first.
	maxHistoryEntries = 10

	modelType = "regression forest"
)

// DurationEstimator is a long-lived domain service that estimates production
// duration in hours for an order.
//
// Two strategies are used:
//   - A bagged regression-tree ensemble trained on delivered orders, once at
//     least MinTrainingExamples examples exist.
//   - A deterministic fallback formula derived from the product catalog,
//     used while no model is trained or when inference fails.
//
// Business rules:
//   - Training replaces the active model atomically; predictions observe
//     either the previous model or the new one, never a partial state.
//   - Concurrent training requests collapse: a request arriving while a
//     training pass runs is a logged no-op, not an error.
//   - Every estimate is floored at MinEstimateHours.
//
// The zero value is not usable; create instances via NewDurationEstimator.
type DurationEstimator struct {
	cfg    regress.Config
	logger *slog.Logger

	training atomic.Bool

	mu            sync.RWMutex
	forest        *regress.Forest
	accuracy      float64
	sampleCount   int
	lastTrainedAt *time.Time
	history       []forecast.TrainingRun
}

// NewDurationEstimator creates a DurationEstimator with the default ensemble
// configuration and no trained model.
func NewDurationEstimator(logger *slog.Logger) *DurationEstimator {
	return &DurationEstimator{
		cfg:    regress.DefaultConfig(),
		logger: logger.With("component", "duration_estimator"),
	}
}

// Train fits a new model on the given examples and swaps it in atomically.
//
// The examples are split in their given order: the first 80% fit the model,
// the remaining 20% measure accuracy as (1 - mean relative error) * 100.
// When the holdout is empty the previous accuracy value is retained.
//
// Returns an InsufficientDataError when fewer than MinTrainingExamples
// examples are provided; the current model and statistics are left untouched.
// A call made while another training pass is running returns nil without
// doing any work.
func (e *DurationEstimator) Train(examples []forecast.Example) error {
	if !e.training.CompareAndSwap(false, true) {
		e.logger.Info("training already in progress, skipping")
		return nil
	}
	defer e.training.Store(false)

	if len(examples) < MinTrainingExamples {
		return errs.NewInsufficientDataError("training examples", len(examples), MinTrainingExamples)
	}

	for i, ex := range examples {
		if err := ex.Validate(); err != nil {
			return fmt.Errorf("training example %d: %w", i, err)
		}
	}

	started := time.Now()

	features := make([][]float64, len(examples))
	labels := make([]float64, len(examples))
	for i, ex := range examples {
		features[i] = ex.Features()
		labels[i] = ex.Label()
	}

	split := int(float64(len(examples)) * trainSplitRatio)
	forest, err := regress.Fit(features[:split], labels[:split], e.cfg)
	if err != nil {
		return fmt.Errorf("fit model: %w", err)
	}

	accuracy, hasHoldout, err := holdoutAccuracy(forest, features[split:], labels[split:])
	if err != nil {
		return fmt.Errorf("evaluate model: %w", err)
	}

	duration := time.Since(started)
	trainedAt := time.Now()

	e.mu.Lock()
	e.forest = forest
	e.sampleCount = len(examples)
	e.lastTrainedAt = &trainedAt
	if hasHoldout {
		e.accuracy = accuracy
	}
	e.history = append(e.history, forecast.TrainingRun{
		Timestamp:   trainedAt,
		SampleCount: len(examples),
		Accuracy:    e.accuracy,
		Duration:    duration,
	})
	if len(e.history) > maxHistoryEntries {
		e.history = e.history[len(e.history)-maxHistoryEntries:]
	}
	e.mu.Unlock()

	e.logger.Info("model trained",
		"samples", len(examples),
		"accuracy", accuracy,
		"duration", duration)

	return nil
}

// Predict estimates production hours for the request. It uses the trained
// model when one is available and the fallback formula otherwise; an
// inference failure also falls back rather than surfacing an error.
// The returned source identifies which strategy produced the value.
func (e *DurationEstimator) Predict(pt product.ProductType, req forecast.PredictionRequest) (float64, forecast.EstimateSource) {
	e.mu.RLock()
	forest := e.forest
	e.mu.RUnlock()

	if forest == nil {
		return e.FallbackEstimate(pt, req), forecast.SourceFormula
	}

	hours, err := forest.Predict(req.FeatureVector(pt))
	if err != nil {
		e.logger.Warn("model inference failed, using fallback formula", "error", err)
		return e.FallbackEstimate(pt, req), forecast.SourceFormula
	}

	return math.Max(MinEstimateHours, hours), forecast.SourceModel
}

// FallbackEstimate computes the deterministic duration estimate:
// base production time, scaled by quantity, the catalog complexity factor
// and the size factor of the requested dimensions, floored at
// MinEstimateHours.
func (e *DurationEstimator) FallbackEstimate(pt product.ProductType, req forecast.PredictionRequest) float64 {
	estimate := pt.BaseProductionTime() *
		float64(req.Quantity()) *
		pt.ComplexityFactor() *
		req.Dimensions().SizeFactor()

	return math.Max(MinEstimateHours, estimate)
}

// IsTrained reports whether a model is currently active.
func (e *DurationEstimator) IsTrained() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.forest != nil
}

// Stats returns a consistent snapshot of the estimator's state. The history
// slice is copied; callers may retain it.
func (e *DurationEstimator) Stats() forecast.ModelStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	history := make([]forecast.TrainingRun, len(e.history))
	copy(history, e.history)

	return forecast.ModelStats{
		IsTrained:     e.forest != nil,
		IsTraining:    e.training.Load(),
		LastTrainedAt: e.lastTrainedAt,
		Accuracy:      e.accuracy,
		ModelType:     modelType,
		Estimators:    e.cfg.Trees,
		MaxDepth:      e.cfg.MaxDepth,
		SampleCount:   e.sampleCount,
		History:       history,
	}
}

// holdoutAccuracy measures (1 - mean relative error) * 100 over the holdout
// rows. The second return value is false when the holdout is empty.
func holdoutAccuracy(forest *regress.Forest, features [][]float64, labels []float64) (float64, bool, error) {
	if len(features) == 0 {
		return 0, false, nil
	}

	var totalRelErr float64
	for i, row := range features {
		predicted, err := forest.Predict(row)
		if err != nil {
			return 0, false, err
		}
		totalRelErr += math.Abs(predicted-labels[i]) / labels[i]
	}

	return (1 - totalRelErr/float64(len(features))) * 100, true, nil
}
