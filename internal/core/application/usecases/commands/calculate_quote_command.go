package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrCalculateQuoteCommandIsNotConstructed = errors.New(
	"CalculateQuoteCommand must be created via NewCalculateQuoteCommand constructor",
)

// CalculateQuoteCommand represents a request to price one shipment request.
type CalculateQuoteCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCalculateQuoteCommand creates a command to price a shipment request.
func NewCalculateQuoteCommand(requestID kernel.UUID) (CalculateQuoteCommand, error) {
	command := CalculateQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return CalculateQuoteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CalculateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCalculateQuoteCommandIsNotConstructed)
}

// RequestID returns the shipment request to price.
func (c CalculateQuoteCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *CalculateQuoteCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
