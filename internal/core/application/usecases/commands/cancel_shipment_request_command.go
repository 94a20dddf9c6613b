package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrCancelShipmentRequestCommandIsNotConstructed = errors.New(
	"CancelShipmentRequestCommand must be created via NewCancelShipmentRequestCommand constructor",
)

// CancelShipmentRequestCommand represents the shipper's withdrawal of a
// request.
type CancelShipmentRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelShipmentRequestCommand creates a command to cancel a request.
func NewCancelShipmentRequestCommand(requestID kernel.UUID) (CancelShipmentRequestCommand, error) {
	command := CancelShipmentRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return CancelShipmentRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentRequestCommandIsNotConstructed)
}

// RequestID returns the request to cancel.
func (c CancelShipmentRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *CancelShipmentRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
