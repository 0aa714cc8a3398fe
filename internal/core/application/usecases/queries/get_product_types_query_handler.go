package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductTypesQueryHandler retrieves the product catalog from the database.
type GetProductTypesQueryHandler struct {
	db *gorm.DB
}

// NewGetProductTypesQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetProductTypesQueryHandler(db *gorm.DB) GetProductTypesQueryHandler {
	return GetProductTypesQueryHandler{db: db}
}

// Handle executes the query to retrieve all product types ordered by id.
func (h GetProductTypesQueryHandler) Handle(
	ctx context.Context,
	query GetProductTypesQuery,
) ([]GetProductTypesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog := make([]GetProductTypesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			material_type,
			base_production_time,
			complexity_factor
		FROM product_types
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetProductTypesQueryResponse

		err = rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.MaterialType,
			&entry.BaseProductionTime,
			&entry.ComplexityFactor,
		)
		if err != nil {
			return nil, err
		}

		catalog = append(catalog, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}
