package commands

import (
	"errors"

	"github.com/Ramos-Maykol/project/internal/pkg/guard"
)

var ErrTrainModelCommandIsNotConstructed = errors.New(
	"TrainModelCommand must be created via NewTrainModelCommand constructor",
)

// TrainModelCommand requests a training pass of the duration model over the
// full delivered-order history.
//
// Example:
//
//	cmd := NewTrainModelCommand()
//	handler := NewTrainModelCommandHandler(reader, estimator, logger)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("training failed: %w", err)
//	}
type TrainModelCommand struct {
	guard guard.ConstructorGuard
}

// NewTrainModelCommand creates a parameterless training command.
func NewTrainModelCommand() TrainModelCommand {
	return TrainModelCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrTrainModelCommandIsNotConstructed if validation fails.
func (c TrainModelCommand) Validate() error {
	return c.guard.Validate(ErrTrainModelCommandIsNotConstructed)
}
