package productrepo

import (
	"context"
	"errors"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/product"
	"github.com/Ramos-Maykol/project/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductTypeRepository implements ProductTypeRepository using GORM.
type GormProductTypeRepository struct {
	db *gorm.DB
}

// NewGormProductTypeRepository creates a new GORM product catalog repository.
func NewGormProductTypeRepository(db *gorm.DB) *GormProductTypeRepository {
	return &GormProductTypeRepository{db: db}
}

// Get retrieves a product type by its catalog id.
func (r *GormProductTypeRepository) Get(ctx context.Context, id int) (product.ProductType, error) {
	var dto ProductTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.ProductType{}, errs.NewObjectNotFoundError("product type", id)
		}
		return product.ProductType{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full product catalog ordered by id.
func (r *GormProductTypeRepository) GetAll(ctx context.Context) ([]product.ProductType, error) {
	var dtos []ProductTypeDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	catalog := make([]product.ProductType, 0, len(dtos))
	for _, dto := range dtos {
		pt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, pt)
	}

	return catalog, nil
}
