package forecast

import (
	"fmt"

	"github.com/Ramos-Maykol/project/internal/pkg/errs"
)

// FeatureCount is the width of the feature vector consumed by the duration
// model: product type, quantity, three dimensions, priority, the two catalog
// constants, and the derived volume.
const FeatureCount = 9

// Example is one training sample derived from a delivered order: the order's
// intake features plus the actual wall-clock production duration as the label.
type Example struct {
	ProductTypeID      int
	Quantity           int
	Width              float64
	Height             float64
	Depth              float64
	Priority           int
	BaseProductionTime float64
	ComplexityFactor   float64
	ActualHours        float64
}

// Validate checks the invariants required of a training example.
// The label must be strictly positive; it is derived only from orders whose
// completion timestamp is later than their production start.
func (e Example) Validate() error {
	if e.ActualHours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actual hours",
			fmt.Errorf("%v is not greater than 0", e.ActualHours))
	}
	return nil
}

// Features returns the model feature vector of the example.
// Missing dimensions contribute zeros, making the derived volume zero as well.
func (e Example) Features() []float64 {
	return []float64{
		float64(e.ProductTypeID),
		float64(e.Quantity),
		e.Width,
		e.Height,
		e.Depth,
		float64(e.Priority),
		e.BaseProductionTime,
		e.ComplexityFactor,
		e.Width * e.Height * e.Depth,
	}
}

// Label returns the training label of the example.
func (e Example) Label() float64 {
	return e.ActualHours
}
