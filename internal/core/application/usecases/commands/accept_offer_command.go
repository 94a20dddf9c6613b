package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand represents the shipper's acceptance of one carrier's
// offer.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	carrierRequestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command to accept a carrier's offer.
func NewAcceptOfferCommand(carrierRequestID kernel.UUID) (AcceptOfferCommand, error) {
	command := AcceptOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCarrierRequestID(carrierRequestID); err != nil {
		return AcceptOfferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// CarrierRequestID returns the match record whose offer to accept.
func (c AcceptOfferCommand) CarrierRequestID() kernel.UUID {
	return c.carrierRequestID
}

func (c *AcceptOfferCommand) setCarrierRequestID(carrierRequestID kernel.UUID) error {
	if err := carrierRequestID.Validate(); err != nil {
		return err
	}

	c.carrierRequestID = carrierRequestID
	return nil
}
