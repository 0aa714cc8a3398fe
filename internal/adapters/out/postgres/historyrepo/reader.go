// Package historyrepo reads the delivered-order history that feeds the
// duration model. The label of each example is the measured wall-clock
// production duration; orders without a measured duration never appear.
package historyrepo

import (
	"context"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/forecast"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormTrainingDataReader implements TrainingDataReader using GORM.
type GormTrainingDataReader struct {
	db *gorm.DB
}

// NewGormTrainingDataReader creates a new GORM training data reader.
func NewGormTrainingDataReader(db *gorm.DB) *GormTrainingDataReader {
	return &GormTrainingDataReader{db: db}
}

// GetTrainingExamples retrieves training examples most-recent-first.
// Only delivered orders with both production timestamps recorded and a
// strictly positive duration qualify. A limit of 0 means no limit.
func (r *GormTrainingDataReader) GetTrainingExamples(ctx context.Context, limit int) ([]forecast.Example, error) {
	query := `
		SELECT
			o.product_type_id,
			o.quantity,
			o.width,
			o.height,
			o.depth,
			o.priority,
			pt.base_production_time,
			pt.complexity_factor,
			EXTRACT(EPOCH FROM (o.completed_at - o.started_at)) / 3600.0 AS actual_hours
		FROM orders o
		JOIN product_types pt ON o.product_type_id = pt.id
		WHERE o.status = ?
		  AND o.started_at IS NOT NULL
		  AND o.completed_at IS NOT NULL
		  AND o.completed_at > o.started_at
		ORDER BY o.completed_at DESC
	`
	args := []any{order.Delivered.String()}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	examples := make([]forecast.Example, 0)
	for rows.Next() {
		var ex forecast.Example

		err = rows.Scan(
			&ex.ProductTypeID,
			&ex.Quantity,
			&ex.Width,
			&ex.Height,
			&ex.Depth,
			&ex.Priority,
			&ex.BaseProductionTime,
			&ex.ComplexityFactor,
			&ex.ActualHours,
		)
		if err != nil {
			return nil, err
		}

		examples = append(examples, ex)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return examples, nil
}
