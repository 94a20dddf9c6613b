package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrDeclineQuoteCommandIsNotConstructed = errors.New(
	"DeclineQuoteCommand must be created via NewDeclineQuoteCommand constructor",
)

// DeclineQuoteCommand represents the shipper's refusal of a pending quote.
type DeclineQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeclineQuoteCommand creates a command to decline a quote.
func NewDeclineQuoteCommand(quoteID kernel.UUID) (DeclineQuoteCommand, error) {
	command := DeclineQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setQuoteID(quoteID); err != nil {
		return DeclineQuoteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineQuoteCommand) Validate() error {
	return c.guard.Validate(ErrDeclineQuoteCommandIsNotConstructed)
}

// QuoteID returns the quote to decline.
func (c DeclineQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c *DeclineQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	c.quoteID = quoteID
	return nil
}
