package quote

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
)

// ErrQuoteIsNotConstructed is returned when a Quote was not created via
// NewQuote or RestoreQuote.
var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote constructor")

// LineItem is one priced component of a quote. LineOrder 0 is the base
// price; surcharges follow in the order they were applied.
type LineItem struct {
	Description string
	Calculation string
	Amount      kernel.Money
	LineOrder   int
}

// Quote is the price offered to the shipper for one shipment request. Its
// breakdown is frozen at calculation time; only the status moves afterwards.
type Quote struct {
	id        kernel.UUID
	requestID kernel.UUID

	basePrice      kernel.Money
	surchargeTotal kernel.Money
	totalPrice     kernel.Money
	currency       string

	lineItems []LineItem

	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewQuote creates a pending quote with its full price breakdown.
//
// lineItems must be non-empty, carry contiguous LineOrder values starting at
// zero, and sum exactly to basePrice + surchargeTotal. The total is derived,
// never supplied.
func NewQuote(
	id kernel.UUID,
	requestID kernel.UUID,
	basePrice kernel.Money,
	surchargeTotal kernel.Money,
	lineItems []LineItem,
	now time.Time,
) (*Quote, error) {
	q := &Quote{
		currency:      kernel.Currency,
		status:        StatusPending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		q.setID(id),
		q.setRequestID(requestID),
		q.setBreakdown(basePrice, surchargeTotal, lineItems),
	); err != nil {
		return nil, err
	}

	return q, nil
}

// RestoreQuote reconstructs a quote from persistence with its stored status.
func RestoreQuote(
	id kernel.UUID,
	requestID kernel.UUID,
	basePrice kernel.Money,
	surchargeTotal kernel.Money,
	lineItems []LineItem,
	status Status,
	createdAt time.Time,
) (*Quote, error) {
	q := &Quote{
		currency:      kernel.Currency,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		q.setID(id),
		q.setRequestID(requestID),
		q.setBreakdown(basePrice, surchargeTotal, lineItems),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	q.status = status
	return q, nil
}

// Validate checks if the Quote was properly constructed.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

// IsEqual compares two quotes by identity.
func (q *Quote) IsEqual(other *Quote) bool {
	return other != nil && q.id.IsEqual(other.id)
}

// ID returns the quote identifier.
func (q *Quote) ID() kernel.UUID { return q.id }

// RequestID returns the shipment request this quote prices.
func (q *Quote) RequestID() kernel.UUID { return q.requestID }

// BasePrice returns the distance-or-minimum base component.
func (q *Quote) BasePrice() kernel.Money { return q.basePrice }

// SurchargeTotal returns the sum of all surcharge line items.
func (q *Quote) SurchargeTotal() kernel.Money { return q.surchargeTotal }

// TotalPrice returns basePrice + surchargeTotal.
func (q *Quote) TotalPrice() kernel.Money { return q.totalPrice }

// Currency returns the ISO currency code of all amounts.
func (q *Quote) Currency() string { return q.currency }

// LineItems returns the price breakdown in line order. The returned slice is
// a copy; the breakdown is immutable.
func (q *Quote) LineItems() []LineItem {
	items := make([]LineItem, len(q.lineItems))
	copy(items, q.lineItems)
	return items
}

// Status returns the current decision status.
func (q *Quote) Status() Status { return q.status }

// CreatedAt returns the calculation time of the quote.
func (q *Quote) CreatedAt() time.Time { return q.createdAt }

// Accept records the shipper's acceptance. Only valid from Pending.
func (q *Quote) Accept() error {
	newStatus, err := q.status.Accept()
	if err != nil {
		return err
	}
	q.status = newStatus
	return nil
}

// Decline records the shipper's refusal. Only valid from Pending.
func (q *Quote) Decline() error {
	newStatus, err := q.status.Decline()
	if err != nil {
		return err
	}
	q.status = newStatus
	return nil
}

// Expire marks the quote as lapsed. Only valid from Pending.
func (q *Quote) Expire() error {
	newStatus, err := q.status.Expire()
	if err != nil {
		return err
	}
	q.status = newStatus
	return nil
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quote) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("requestId", err)
	}
	q.requestID = requestID
	return nil
}

func (q *Quote) setBreakdown(basePrice, surchargeTotal kernel.Money, lineItems []LineItem) error {
	if basePrice.IsNegative() {
		return errs.NewValueIsInvalidError("basePrice")
	}
	if surchargeTotal.IsNegative() {
		return errs.NewValueIsInvalidError("surchargeTotal")
	}
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	sum := kernel.Money{}
	for i, item := range lineItems {
		if item.LineOrder != i {
			return errs.NewValueIsInvalidError("lineItems order")
		}
		sum = sum.Add(item.Amount)
	}

	total := basePrice.Add(surchargeTotal)
	if !sum.IsEqual(total) {
		return errs.NewValueIsInvalidError("lineItems do not sum to the total")
	}

	q.basePrice = basePrice
	q.surchargeTotal = surchargeTotal
	q.totalPrice = total
	q.lineItems = make([]LineItem, len(lineItems))
	copy(q.lineItems, lineItems)
	return nil
}
