package queries

import (
	"context"

	"github.com/Ramos-Maykol/project/internal/core/domain/services"
)

// GetModelStatsQueryHandler exposes the duration estimator's state as a read
// model. This query never touches the database; the estimator keeps its own
// statistics in memory.
type GetModelStatsQueryHandler struct {
	estimator *services.DurationEstimator
}

// NewGetModelStatsQueryHandler creates a handler for model statistic queries.
func NewGetModelStatsQueryHandler(estimator *services.DurationEstimator) GetModelStatsQueryHandler {
	return GetModelStatsQueryHandler{estimator: estimator}
}

// Handle returns the current model snapshot with display-rounded history.
func (h GetModelStatsQueryHandler) Handle(
	ctx context.Context,
	query GetModelStatsQuery,
) (GetModelStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetModelStatsQueryResponse{}, err
	}

	stats := h.estimator.Stats()
	stats.History = stats.RoundedHistory()

	return GetModelStatsQueryResponse{Stats: stats}, nil
}
