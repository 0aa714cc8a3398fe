// Package product contains the product-type catalog entry used by order intake
// and production forecasting. A product type carries the two calibration
// constants of the deterministic estimate: base production time per unit and a
// complexity multiplier.
package product

import (
	"fmt"

	"github.com/Ramos-Maykol/project/internal/pkg/errs"
	"github.com/Ramos-Maykol/project/internal/pkg/guard"
)

// ErrProductTypeIsNotConstructed is returned when a ProductType instance was
// not created through the NewProductType factory method.
var ErrProductTypeIsNotConstructed = errs.NewValueIsRequiredError(
	"ProductType must be created via NewProductType constructor")

// ProductType is an immutable catalog entry describing a manufacturable
// product. It is identified by the numeric catalog id assigned by the store.
//
// Invariants:
//   - id is positive
//   - name is not empty
//   - base production time (hours per unit) is strictly positive
//   - complexity factor is strictly positive
type ProductType struct { //nolint:recvcheck //using for validation
	id                 int
	name               string
	materialType       string
	baseProductionTime float64
	complexityFactor   float64

	guard guard.ConstructorGuard
}

// NewProductType creates a validated ProductType.
// materialType is informational and may be empty.
func NewProductType(id int, name, materialType string, baseProductionTime, complexityFactor float64) (ProductType, error) {
	pt := ProductType{
		guard: guard.NewConstructorGuard(),
	}

	if id <= 0 {
		return ProductType{}, errs.NewValueIsInvalidErrorWithCause("product type id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if name == "" {
		return ProductType{}, errs.NewValueIsRequiredError("product type name")
	}
	if baseProductionTime <= 0 {
		return ProductType{}, errs.NewValueIsInvalidErrorWithCause("base production time",
			fmt.Errorf("%v is not greater than 0", baseProductionTime))
	}
	if complexityFactor <= 0 {
		return ProductType{}, errs.NewValueIsInvalidErrorWithCause("complexity factor",
			fmt.Errorf("%v is not greater than 0", complexityFactor))
	}

	pt.id = id
	pt.name = name
	pt.materialType = materialType
	pt.baseProductionTime = baseProductionTime
	pt.complexityFactor = complexityFactor
	return pt, nil
}

// ID returns the catalog identifier.
func (p ProductType) ID() int {
	return p.id
}

// Name returns the catalog display name.
func (p ProductType) Name() string {
	return p.name
}

// MaterialType returns the primary material, empty if not recorded.
func (p ProductType) MaterialType() string {
	return p.materialType
}

// BaseProductionTime returns the calibrated hours of work per unit.
func (p ProductType) BaseProductionTime() float64 {
	return p.baseProductionTime
}

// ComplexityFactor returns the production-complexity multiplier.
func (p ProductType) ComplexityFactor() float64 {
	return p.complexityFactor
}

// IsEqual compares two product types by catalog id.
func (p ProductType) IsEqual(other ProductType) bool {
	return p.id == other.id
}

// Validate ensures the ProductType was created through NewProductType.
func (p ProductType) Validate() error {
	return p.guard.Validate(ErrProductTypeIsNotConstructed)
}
