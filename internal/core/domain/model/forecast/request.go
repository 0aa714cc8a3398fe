package forecast

import (
	"fmt"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/product"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"
	"github.com/Ramos-Maykol/project/internal/pkg/guard"
)

// DefaultPriority is assumed when a request does not specify a priority.
const DefaultPriority = 1

// ErrPredictionRequestIsNotConstructed is returned when a PredictionRequest
// was not created through NewPredictionRequest.
var ErrPredictionRequestIsNotConstructed = errs.NewValueIsRequiredError(
	"PredictionRequest must be created via NewPredictionRequest constructor")

// PredictionRequest describes a prospective order for which a production
// duration is requested. Product type and quantity are mandatory; dimensions
// and priority are optional, with unspecified dimensions treated as zero and
// priority defaulting to DefaultPriority.
type PredictionRequest struct { //nolint:recvcheck //using for validation
	productTypeID int
	quantity      int
	dimensions    kernel.Dimensions
	priority      int

	guard guard.ConstructorGuard
}

// NewPredictionRequest creates a validated PredictionRequest.
// Pass priority 0 to accept the default.
func NewPredictionRequest(productTypeID, quantity int, dimensions kernel.Dimensions, priority int) (PredictionRequest, error) {
	if productTypeID <= 0 {
		return PredictionRequest{}, errs.NewValueIsRequiredError("product_type_id")
	}
	if quantity <= 0 {
		return PredictionRequest{}, errs.NewValueIsRequiredError("quantity")
	}
	if err := dimensions.Validate(); err != nil {
		return PredictionRequest{}, err
	}
	if priority == 0 {
		priority = DefaultPriority
	}
	if priority < 1 {
		return PredictionRequest{}, errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is less than 1", priority))
	}

	return PredictionRequest{
		productTypeID: productTypeID,
		quantity:      quantity,
		dimensions:    dimensions,
		priority:      priority,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// ProductTypeID returns the catalog id of the requested product.
func (r PredictionRequest) ProductTypeID() int {
	return r.productTypeID
}

// Quantity returns the requested number of units.
func (r PredictionRequest) Quantity() int {
	return r.quantity
}

// Dimensions returns the requested physical measures.
func (r PredictionRequest) Dimensions() kernel.Dimensions {
	return r.dimensions
}

// Priority returns the requested production priority.
func (r PredictionRequest) Priority() int {
	return r.priority
}

// FeatureVector builds the feature vector the duration model consumes,
// combining the request with the catalog constants of its product type.
// The layout must match the one used for training examples.
func (r PredictionRequest) FeatureVector(pt product.ProductType) []float64 {
	return []float64{
		float64(r.productTypeID),
		float64(r.quantity),
		r.dimensions.Width(),
		r.dimensions.Height(),
		r.dimensions.Depth(),
		float64(r.priority),
		pt.BaseProductionTime(),
		pt.ComplexityFactor(),
		r.dimensions.Volume(),
	}
}

// Validate ensures the request was created through the constructor.
func (r PredictionRequest) Validate() error {
	return r.guard.Validate(ErrPredictionRequestIsNotConstructed)
}
