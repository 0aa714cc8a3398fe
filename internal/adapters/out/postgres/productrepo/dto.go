// Package productrepo provides read access to the product catalog.
// The catalog is reference data seeded by migrations; the application never
// writes to it, so this repository exposes reads only.
package productrepo

import (
	"github.com/Ramos-Maykol/project/internal/core/domain/model/product"
)

// ProductTypeDTO represents the database structure of a catalog entry.
type ProductTypeDTO struct {
	ID                 int    `gorm:"primaryKey"`
	Name               string `gorm:"size:255"`
	MaterialType       string `gorm:"size:64"`
	BaseProductionTime float64
	ComplexityFactor   float64
}

// TableName specifies the database table name for product types.
func (ProductTypeDTO) TableName() string {
	return "product_types"
}

// toDomain converts a catalog DTO to its domain value object.
func toDomain(dto ProductTypeDTO) (product.ProductType, error) {
	return product.NewProductType(
		dto.ID,
		dto.Name,
		dto.MaterialType,
		dto.BaseProductionTime,
		dto.ComplexityFactor,
	)
}
