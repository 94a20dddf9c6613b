package commands

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var (
	ErrSubmitOfferCommandIsNotConstructed = errors.New(
		"SubmitOfferCommand must be created via NewSubmitOfferCommand constructor",
	)
	ErrOfferPriceIsNegative = errors.New("offer price must not be negative")
)

// SubmitOfferCommand represents a carrier's response to an invitation: a
// price, an optional committed delivery date and a free-text note.
type SubmitOfferCommand struct { //nolint:recvcheck //using for validation
	carrierRequestID kernel.UUID
	price            kernel.Money
	deliveryDate     *time.Time
	note             string

	guard guard.ConstructorGuard
}

// NewSubmitOfferCommand creates a command to submit a carrier's offer.
func NewSubmitOfferCommand(
	carrierRequestID kernel.UUID,
	price kernel.Money,
	deliveryDate *time.Time,
	note string,
) (SubmitOfferCommand, error) {
	command := SubmitOfferCommand{
		deliveryDate: deliveryDate,
		note:         note,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierRequestID(carrierRequestID),
		command.setPrice(price),
	); err != nil {
		return SubmitOfferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOfferCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOfferCommandIsNotConstructed)
}

// CarrierRequestID returns the match record the offer belongs to.
func (c SubmitOfferCommand) CarrierRequestID() kernel.UUID {
	return c.carrierRequestID
}

// Price returns the offered price.
func (c SubmitOfferCommand) Price() kernel.Money {
	return c.price
}

// DeliveryDate returns the committed delivery date, nil when not named.
func (c SubmitOfferCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// Note returns the free-text note attached to the offer.
func (c SubmitOfferCommand) Note() string {
	return c.note
}

func (c *SubmitOfferCommand) setCarrierRequestID(carrierRequestID kernel.UUID) error {
	if err := carrierRequestID.Validate(); err != nil {
		return err
	}

	c.carrierRequestID = carrierRequestID
	return nil
}

func (c *SubmitOfferCommand) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return ErrOfferPriceIsNegative
	}

	c.price = price
	return nil
}
