// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/Ramos-Maykol/project/internal/core/domain/model/kernel"
	"github.com/Ramos-Maykol/project/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored as its lowercase wire name so that raw read queries
// can filter on it without mapping tables.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber           string    `gorm:"size:32;uniqueIndex"`
	CustomerName          string    `gorm:"size:255"`
	ProductTypeID         int       `gorm:"index"`
	Quantity              int
	Width                 float64
	Height                float64
	Depth                 float64
	Priority              int
	EstimatedHours        float64
	EstimatedDeliveryDate time.Time
	Status                string `gorm:"size:16;index"`
	PlacedAt              time.Time
	StartedAt             *time.Time
	CompletedAt           *time.Time
	DeliveredAt           *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dims := aggregate.Dimensions()

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderNumber:           aggregate.OrderNumber(),
		CustomerName:          aggregate.CustomerName(),
		ProductTypeID:         aggregate.ProductTypeID(),
		Quantity:              aggregate.Quantity(),
		Width:                 dims.Width(),
		Height:                dims.Height(),
		Depth:                 dims.Depth(),
		Priority:              aggregate.Priority(),
		EstimatedHours:        aggregate.EstimatedHours(),
		EstimatedDeliveryDate: aggregate.EstimatedDeliveryDate(),
		Status:                aggregate.Status().String(),
		PlacedAt:              aggregate.PlacedAt(),
		StartedAt:             aggregate.StartedAt(),
		CompletedAt:           aggregate.CompletedAt(),
		DeliveredAt:           aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and lifecycle
// timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	dims, err := kernel.NewDimensions(dto.Width, dto.Height, dto.Depth)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.CustomerName,
		dto.ProductTypeID,
		dto.Quantity,
		dims,
		dto.Priority,
		dto.EstimatedHours,
		dto.EstimatedDeliveryDate,
		status,
		dto.PlacedAt,
		dto.StartedAt,
		dto.CompletedAt,
		dto.DeliveredAt,
	)
}
