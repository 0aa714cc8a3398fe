package queries

import (
	"errors"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/forecast"
	"github.com/Ramos-Maykol/project/internal/pkg/guard"
)

var ErrGetModelStatsQueryIsNotConstructed = errors.New(
	"GetModelStatsQuery must be created via NewGetModelStatsQuery constructor",
)

// GetModelStatsQuery retrieves a snapshot of the duration model's state:
// training status, accuracy, configuration and the recent training history.
//
// Example:
//
//	query := NewGetModelStatsQuery()
//	handler := NewGetModelStatsQueryHandler(estimator)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get model stats: %w", err)
//	}
//	fmt.Printf("trained=%v accuracy=%.2f%%\n", stats.IsTrained, stats.Accuracy)
type GetModelStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetModelStatsQuery creates a query to retrieve model statistics.
// This is a parameterless query.
func NewGetModelStatsQuery() GetModelStatsQuery {
	return GetModelStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetModelStatsQueryIsNotConstructed if validation fails.
func (q GetModelStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetModelStatsQueryIsNotConstructed)
}

// GetModelStatsQueryResponse carries the model snapshot. History accuracies
// are rounded to two decimals for display.
type GetModelStatsQueryResponse struct {
	Stats forecast.ModelStats
}
