package queries

import (
	"errors"

	"github.com/Ramos-Maykol/project/internal/pkg/guard"
)

var ErrGetProductTypesQueryIsNotConstructed = errors.New(
	"GetProductTypesQuery must be created via NewGetProductTypesQuery constructor",
)

// GetProductTypesQuery retrieves the full product catalog for intake forms.
//
// Example:
//
//	query := NewGetProductTypesQuery()
//	handler := NewGetProductTypesQueryHandler(db)
//
//	catalog, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get catalog: %w", err)
//	}
type GetProductTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductTypesQuery creates a query to retrieve the product catalog.
// This is a parameterless query.
func NewGetProductTypesQuery() GetProductTypesQuery {
	return GetProductTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductTypesQueryIsNotConstructed if validation fails.
func (q GetProductTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetProductTypesQueryIsNotConstructed)
}

// GetProductTypesQueryResponse represents one catalog entry.
type GetProductTypesQueryResponse struct {
	ID                 int
	Name               string
	MaterialType       string
	BaseProductionTime float64
	ComplexityFactor   float64
}
