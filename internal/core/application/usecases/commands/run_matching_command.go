package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrRunMatchingCommandIsNotConstructed = errors.New(
	"RunMatchingCommand must be created via NewRunMatchingCommand constructor",
)

// RunMatchingCommand represents a request to run the matching pipeline for
// one shipment request.
type RunMatchingCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRunMatchingCommand creates a command to run matching for a request.
func NewRunMatchingCommand(requestID kernel.UUID) (RunMatchingCommand, error) {
	command := RunMatchingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return RunMatchingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RunMatchingCommand) Validate() error {
	return c.guard.Validate(ErrRunMatchingCommandIsNotConstructed)
}

// RequestID returns the shipment request to match.
func (c RunMatchingCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *RunMatchingCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
