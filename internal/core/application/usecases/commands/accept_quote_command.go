package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrAcceptQuoteCommandIsNotConstructed = errors.New(
	"AcceptQuoteCommand must be created via NewAcceptQuoteCommand constructor",
)

// AcceptQuoteCommand represents the shipper's acceptance of a pending quote.
type AcceptQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptQuoteCommand creates a command to accept a quote.
func NewAcceptQuoteCommand(quoteID kernel.UUID) (AcceptQuoteCommand, error) {
	command := AcceptQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setQuoteID(quoteID); err != nil {
		return AcceptQuoteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptQuoteCommand) Validate() error {
	return c.guard.Validate(ErrAcceptQuoteCommandIsNotConstructed)
}

// QuoteID returns the quote to accept.
func (c AcceptQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c *AcceptQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	c.quoteID = quoteID
	return nil
}
