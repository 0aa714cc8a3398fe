package commands

import (
	"context"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/services"
	"github.com/Ramos-Maykol/project/internal/core/ports"
	"github.com/Ramos-Maykol/project/internal/metrics"
)

// TrainModelCommandHandler feeds the duration estimator with the delivered
// order history. All delivered orders with a measured production duration
// are used, most-recent-first.
type TrainModelCommandHandler struct {
	reader    ports.TrainingDataReader
	estimator *services.DurationEstimator
}

// NewTrainModelCommandHandler creates a handler for model training.
// Requires a TrainingDataReader for the example set and the estimator to
// train.
func NewTrainModelCommandHandler(
	reader ports.TrainingDataReader,
	estimator *services.DurationEstimator,
) TrainModelCommandHandler {
	return TrainModelCommandHandler{
		reader:    reader,
		estimator: estimator,
	}
}

// Handle executes one training pass.
// Returns an InsufficientDataError when the delivered history is smaller
// than the estimator's minimum; the active model is left untouched in that
// case.
func (h TrainModelCommandHandler) Handle(ctx context.Context, cmd TrainModelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	examples, err := h.reader.GetTrainingExamples(ctx, 0)
	if err != nil {
		return err
	}

	started := time.Now()
	if err = h.estimator.Train(examples); err != nil {
		metrics.TrainingFailuresTotal.Inc()
		return err
	}

	metrics.TrainingRunsTotal.Inc()
	metrics.TrainingDuration.Observe(time.Since(started).Seconds())

	return nil
}
