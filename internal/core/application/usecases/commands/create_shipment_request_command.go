package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/pkg/guard"
)

var (
	ErrCreateShipmentRequestCommandIsNotConstructed = errors.New(
		"CreateShipmentRequestCommand must be created via NewCreateShipmentRequestCommand constructor",
	)
	ErrCargoIsRequired = errors.New("cargo is required")
)

// CreateShipmentRequestCommand represents a request to register a new
// shipment request. The full route, cargo and requirement validation happens
// in the aggregate constructor; the command only guards its own shape.
//
// Example:
//
//	requestID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentRequestCommand(requestID, spec)
//	if err != nil {
//	    return fmt.Errorf("invalid request data: %w", err)
//	}
//
//	handler := NewCreateShipmentRequestCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create request: %w", err)
//	}
type CreateShipmentRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	spec      shipment.RequestSpec

	guard guard.ConstructorGuard
}

// NewCreateShipmentRequestCommand creates a command to register a new
// shipment request. Validates that the id is valid and cargo is present.
func NewCreateShipmentRequestCommand(
	requestID kernel.UUID,
	spec shipment.RequestSpec,
) (CreateShipmentRequestCommand, error) {
	command := CreateShipmentRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setSpec(spec),
	); err != nil {
		return CreateShipmentRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the new request.
func (c CreateShipmentRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Spec returns the request attributes to create the aggregate from.
func (c CreateShipmentRequestCommand) Spec() shipment.RequestSpec {
	return c.spec
}

func (c *CreateShipmentRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateShipmentRequestCommand) setSpec(spec shipment.RequestSpec) error {
	if spec.Cargo == nil {
		return ErrCargoIsRequired
	}

	c.spec = spec
	return nil
}
