package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ramos-Maykol/project/internal/core/application/usecases/commands"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ModelTrainingJob refreshes the duration model on a nightly schedule.
// Catches up on delivery history accumulated while the intake was idle.
type ModelTrainingJob struct {
	handler commands.TrainModelCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewModelTrainingJob creates a new job for refreshing the duration model.
// Uses TrainModelCommandHandler to run the same training path the retrain
// endpoint and delivery hook use.
func NewModelTrainingJob(handler commands.TrainModelCommandHandler, logger *slog.Logger) *ModelTrainingJob {
	return &ModelTrainingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "model_training_job"),
	}
}

// Start schedules the training job to run nightly at 02:00.
func (j *ModelTrainingJob) Start() error {
	_, err := j.cron.AddFunc("0 0 2 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewTrainModelCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Too little delivery history is an expected business scenario
			if !errors.Is(err, errs.ErrInsufficientData) {
				j.logger.ErrorContext(ctx, "Model training job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Model training job started (running nightly at 02:00)")
	return nil
}

// Stop stops the model training job.
func (j *ModelTrainingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Model training job stopped")
}
