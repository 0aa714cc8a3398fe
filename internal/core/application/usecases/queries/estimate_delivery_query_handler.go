package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/forecast"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/order"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/product"
	"github.com/Ramos-Maykol/project/internal/core/domain/services"
	"github.com/Ramos-Maykol/project/internal/metrics"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"

	"gorm.io/gorm"
)

// EstimateDeliveryQueryHandler previews delivery promises against the live
// production queue. Reads the catalog and the active queue, runs the duration
// estimator and the scheduler, and persists nothing.
//
// Example:
//
//	handler := NewEstimateDeliveryQueryHandler(db, estimator, scheduler)
//	query, _ := NewEstimateDeliveryQuery(3, 2, 0, 0, 0, 0)
//
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("estimation failed: %w", err)
//	}
//	fmt.Printf("%.1f hours, delivery %s\n",
//	    estimate.EstimatedHours, estimate.EstimatedDeliveryDate.Format("2006-01-02"))
type EstimateDeliveryQueryHandler struct {
	db        *gorm.DB
	estimator *services.DurationEstimator
	scheduler services.DeliveryScheduler
}

// NewEstimateDeliveryQueryHandler creates a handler for delivery previews.
// Requires a GORM database connection, the duration estimator and the
// delivery scheduler.
func NewEstimateDeliveryQueryHandler(
	db *gorm.DB,
	estimator *services.DurationEstimator,
	scheduler services.DeliveryScheduler,
) EstimateDeliveryQueryHandler {
	return EstimateDeliveryQueryHandler{
		db:        db,
		estimator: estimator,
		scheduler: scheduler,
	}
}

// Handle executes the delivery estimation.
// Returns an ObjectNotFoundError when the requested product type is not in
// the catalog.
func (h EstimateDeliveryQueryHandler) Handle(
	ctx context.Context,
	query EstimateDeliveryQuery,
) (EstimateDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateDeliveryQueryResponse{}, err
	}

	productType, err := h.getProductType(ctx, query.ProductTypeID())
	if err != nil {
		return EstimateDeliveryQueryResponse{}, err
	}

	req, err := forecast.NewPredictionRequest(
		query.ProductTypeID(), query.Quantity(), query.Dimensions(), query.Priority())
	if err != nil {
		return EstimateDeliveryQueryResponse{}, err
	}

	hours, source := h.estimator.Predict(productType, req)

	queueDurations, err := h.getActiveQueueDurations(ctx)
	if err != nil {
		return EstimateDeliveryQueryResponse{}, err
	}

	estimate := h.scheduler.Schedule(hours, queueDurations, len(queueDurations), time.Now())

	metrics.PredictionsTotal.WithLabelValues(string(source)).Inc()

	return EstimateDeliveryQueryResponse{
		EstimatedHours:        estimate.EstimatedHours,
		EffectiveQueueHours:   estimate.EffectiveQueueHours,
		EstimatedDeliveryDate: estimate.EstimatedDeliveryDate,
		QueuePosition:         estimate.QueuePosition,
		Source:                source,
	}, nil
}

func (h EstimateDeliveryQueryHandler) getProductType(ctx context.Context, id int) (product.ProductType, error) {
	var (
		name               string
		materialType       string
		baseProductionTime float64
		complexityFactor   float64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			material_type,
			base_production_time,
			complexity_factor
		FROM product_types
		WHERE id = ?
	`, id).Row()

	err := row.Scan(&name, &materialType, &baseProductionTime, &complexityFactor)
	if errors.Is(err, sql.ErrNoRows) {
		return product.ProductType{}, errs.NewObjectNotFoundError("product type id", id)
	}
	if err != nil {
		return product.ProductType{}, err
	}

	return product.NewProductType(id, name, materialType, baseProductionTime, complexityFactor)
}

func (h EstimateDeliveryQueryHandler) getActiveQueueDurations(ctx context.Context) ([]float64, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT estimated_hours
		FROM orders
		WHERE status IN (?, ?)
	`, order.Pending.String(), order.InProgress.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	durations := make([]float64, 0)
	for rows.Next() {
		var hours float64
		if err = rows.Scan(&hours); err != nil {
			return nil, err
		}
		durations = append(durations, hours)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return durations, nil
}
