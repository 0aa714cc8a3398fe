package ports

import (
	"context"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/product"
)

// ProductTypeRepository defines the read contract for the product catalog.
// The catalog is reference data: it is written by migrations, never by the
// application.
type ProductTypeRepository interface {
	// Get retrieves a product type by its catalog id.
	// Returns an ObjectNotFoundError when no such product type exists.
	Get(ctx context.Context, id int) (product.ProductType, error)

	// GetAll retrieves the full product catalog ordered by id.
	GetAll(ctx context.Context) ([]product.ProductType, error)
}
