package forecast_test

import (
	"testing"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/forecast"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/product"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPredictionRequest(t *testing.T) {
	t.Run("valid_request", func(t *testing.T) {
		dims, err := kernel.NewDimensions(100, 50, 30)
		require.NoError(t, err)

		req, err := forecast.NewPredictionRequest(3, 2, dims, 5)
		require.NoError(t, err)
		require.NoError(t, req.Validate())

		assert.Equal(t, 3, req.ProductTypeID())
		assert.Equal(t, 2, req.Quantity())
		assert.Equal(t, 5, req.Priority())
		assert.True(t, dims.IsEqual(req.Dimensions()))
	})

	t.Run("priority_defaults_to_one", func(t *testing.T) {
		req, err := forecast.NewPredictionRequest(1, 1, kernel.NoDimensions(), 0)
		require.NoError(t, err)
		assert.Equal(t, forecast.DefaultPriority, req.Priority())
	})

	t.Run("missing_product_type_is_required_error", func(t *testing.T) {
		_, err := forecast.NewPredictionRequest(0, 1, kernel.NoDimensions(), 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing_quantity_is_required_error", func(t *testing.T) {
		_, err := forecast.NewPredictionRequest(1, 0, kernel.NoDimensions(), 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative_priority_is_invalid", func(t *testing.T) {
		_, err := forecast.NewPredictionRequest(1, 1, kernel.NoDimensions(), -2)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed_dimensions_are_rejected", func(t *testing.T) {
		_, err := forecast.NewPredictionRequest(1, 1, kernel.Dimensions{}, 1)
		require.Error(t, err)
	})

	t.Run("unconstructed_request_fails_validation", func(t *testing.T) {
		req := forecast.PredictionRequest{}
		require.ErrorIs(t, req.Validate(), forecast.ErrPredictionRequestIsNotConstructed)
	})
}

func TestPredictionRequest_FeatureVector(t *testing.T) {
	pt, err := product.NewProductType(3, "Mesa de madera", "madera", 4.0, 1.5)
	require.NoError(t, err)

	t.Run("full_request", func(t *testing.T) {
		dims, err := kernel.NewDimensions(100, 50, 30)
		require.NoError(t, err)
		req, err := forecast.NewPredictionRequest(3, 2, dims, 4)
		require.NoError(t, err)

		features := req.FeatureVector(pt)
		require.Len(t, features, forecast.FeatureCount)
		assert.Equal(t, []float64{3, 2, 100, 50, 30, 4, 4.0, 1.5, 150000}, features)
	})

	t.Run("missing_dimensions_yield_zero_volume", func(t *testing.T) {
		req, err := forecast.NewPredictionRequest(3, 2, kernel.NoDimensions(), 0)
		require.NoError(t, err)

		features := req.FeatureVector(pt)
		assert.Equal(t, []float64{3, 2, 0, 0, 0, 1, 4.0, 1.5, 0}, features)
	})
}

func TestExample(t *testing.T) {
	t.Run("features_match_request_layout", func(t *testing.T) {
		ex := forecast.Example{
			ProductTypeID:      3,
			Quantity:           2,
			Width:              100,
			Height:             50,
			Depth:              30,
			Priority:           4,
			BaseProductionTime: 4.0,
			ComplexityFactor:   1.5,
			ActualHours:        13.5,
		}

		require.NoError(t, ex.Validate())
		assert.Equal(t, []float64{3, 2, 100, 50, 30, 4, 4.0, 1.5, 150000}, ex.Features())
		assert.Equal(t, 13.5, ex.Label())
	})

	t.Run("non_positive_label_is_invalid", func(t *testing.T) {
		ex := forecast.Example{ProductTypeID: 1, Quantity: 1, ActualHours: 0}
		require.ErrorIs(t, ex.Validate(), errs.ErrValueIsInvalid)
	})
}

func TestModelStats_RoundedHistory(t *testing.T) {
	stats := forecast.ModelStats{
		History: []forecast.TrainingRun{
			{SampleCount: 12, Accuracy: 87.123456},
			{SampleCount: 14, Accuracy: 90.005},
		},
	}

	rounded := stats.RoundedHistory()
	require.Len(t, rounded, 2)
	assert.Equal(t, 87.12, rounded[0].Accuracy)
	assert.Equal(t, 90.01, rounded[1].Accuracy)

	// the snapshot keeps full precision
	assert.Equal(t, 87.123456, stats.History[0].Accuracy)
}
