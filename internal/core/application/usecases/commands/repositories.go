// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/Ramos-Maykol/project/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductTypeRepoFactory provides access to the product catalog within a transaction.
	ProductTypeRepoFactory interface {
		ProductTypeRepository() ports.ProductTypeRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions for operations that read the product catalog
	// while modifying order aggregates.
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductTypeRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// ModelRetrainer triggers a model training pass. Satisfied by
	// TrainModelCommandHandler; abstracted so lifecycle commands can fire
	// retraining without owning the training dependencies.
	ModelRetrainer interface {
		Handle(ctx context.Context, cmd TrainModelCommand) error
	}
)
