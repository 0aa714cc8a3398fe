package ports

import (
	"context"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/forecast"
)

// TrainingDataReader reads the training set of the duration model: one
// example per delivered order whose production start and completion
// timestamps are both recorded, with the completion strictly after the start.
type TrainingDataReader interface {
	// GetTrainingExamples retrieves the examples most-recent-first, limited
	// to the given maximum. A limit of 0 means no limit.
	GetTrainingExamples(ctx context.Context, limit int) ([]forecast.Example, error)
}
