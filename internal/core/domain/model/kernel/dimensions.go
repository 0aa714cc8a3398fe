package kernel

import (
	"fmt"

	"github.com/Ramos-Maykol/project/internal/pkg/errs"
	"github.com/Ramos-Maykol/project/internal/pkg/guard"
)

// sizeFactorDivisor scales the footprint area into a multiplicative surcharge.
// A 100x100 piece with depth 1 adds exactly one extra unit of work.
const sizeFactorDivisor = 10000.0

// ErrDimensionsAreNotConstructed is returned when attempting to use an
// improperly initialized Dimensions value. Dimensions must be created via
// NewDimensions or NoDimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions or NoDimensions constructors")

// Dimensions is an immutable value object describing the physical size of an
// ordered product in centimeters. All measures are optional: a zero measure
// means the customer did not specify it, and size-dependent calculations treat
// the product as having no measurable footprint.
//
// Example:
//
//	dims, err := kernel.NewDimensions(120, 80, 2.5)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Printf("volume: %.1f cm3", dims.Volume())
type Dimensions struct { //nolint:recvcheck //using for validation
	width  float64
	height float64
	depth  float64
	guard  guard.ConstructorGuard
}

// NewDimensions creates a Dimensions value with the given measures in
// centimeters. Each measure must be zero or positive; zero means unspecified.
func NewDimensions(width, height, depth float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if width < 0 {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause("width",
			fmt.Errorf("%v is negative", width))
	}
	if height < 0 {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause("height",
			fmt.Errorf("%v is negative", height))
	}
	if depth < 0 {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause("depth",
			fmt.Errorf("%v is negative", depth))
	}

	d.width = width
	d.height = height
	d.depth = depth
	return d, nil
}

// NoDimensions creates a Dimensions value for an order with no specified
// measures. Size-dependent factors evaluate to their neutral values.
func NoDimensions() Dimensions {
	return Dimensions{guard: guard.NewConstructorGuard()}
}

// Width returns the width in centimeters, 0 if unspecified.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height in centimeters, 0 if unspecified.
func (d Dimensions) Height() float64 {
	return d.height
}

// Depth returns the depth in centimeters, 0 if unspecified.
func (d Dimensions) Depth() float64 {
	return d.depth
}

// Volume returns width * height * depth. Any unspecified measure makes the
// volume 0, which is the neutral value the duration model was trained with.
func (d Dimensions) Volume() float64 {
	return d.width * d.height * d.depth
}

// SizeFactor returns the multiplicative production-time surcharge implied by
// the product footprint. Orders without both width and height carry no
// surcharge. Depth defaults to 1 when unspecified, so flat pieces are scaled
// by their area alone.
func (d Dimensions) SizeFactor() float64 {
	if d.width == 0 || d.height == 0 {
		return 1.0
	}
	depth := d.depth
	if depth == 0 {
		depth = 1
	}
	return 1.0 + (d.width*d.height*depth)/sizeFactorDivisor
}

// IsEqual compares two Dimensions values measure by measure.
func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.width == other.width && d.height == other.height && d.depth == other.depth
}

// String returns a compact human-readable representation.
func (d Dimensions) String() string {
	return fmt.Sprintf("Dimensions(%gx%gx%g cm)", d.width, d.height, d.depth)
}

// Validate checks that the Dimensions value was properly constructed.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}
