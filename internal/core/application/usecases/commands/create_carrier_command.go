package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
	ErrCarrierNameIsRequired = errors.New("carrier name is required")
)

// CreateCarrierCommand represents a request to register a new carrier
// profile. Profile validation beyond the basics happens in the aggregate
// constructor.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	spec      carrier.CarrierSpec

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a new carrier.
func NewCreateCarrierCommand(
	carrierID kernel.UUID,
	spec carrier.CarrierSpec,
) (CreateCarrierCommand, error) {
	command := CreateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierID(carrierID),
		command.setSpec(spec),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the unique identifier for the new carrier.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Spec returns the carrier profile to create the aggregate from.
func (c CreateCarrierCommand) Spec() carrier.CarrierSpec {
	return c.spec
}

func (c *CreateCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *CreateCarrierCommand) setSpec(spec carrier.CarrierSpec) error {
	if spec.Name == "" {
		return ErrCarrierNameIsRequired
	}

	c.spec = spec
	return nil
}
