package services

import (
	"errors"
	"fmt"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/pricing"
	"freightmatch/internal/core/domain/model/quote"
	"freightmatch/internal/core/domain/model/shipment"
)

// ErrMissingDistance is returned when the request carries no billing distance.
// The quote cannot be priced without one; this is a recoverable condition the
// caller surfaces to the user.
var ErrMissingDistance = errors.New("request has no billing distance")

// expressWindow is the notice period below which a pickup counts as express.
const expressWindow = 24 * time.Hour

// QuoteCalculator is a domain service that prices one shipment request
// against a pricing rule.
//
// Pricing algorithm:
//   - base = max(billing distance x rate per km, the rule's minimum price)
//   - weekend surcharge when the pickup date falls on Saturday or Sunday
//   - express surcharge when the pickup is less than 24 hours away
//
// Each surcharge is a percentage of the base, rounded at the cent; the total
// is the exact sum of the rounded line items. The calculator returns an
// unpersisted Pending quote; persisting it atomically with its line items is
// the caller's job.
type QuoteCalculator struct{}

// NewQuoteCalculator creates a new QuoteCalculator instance.
func NewQuoteCalculator() QuoteCalculator {
	return QuoteCalculator{}
}

// Calculate prices the request with the given rule.
//
// Parameters:
//   - request: The shipment request to price (must be constructed and carry
//     a billing distance)
//   - rule: The pricing rule resolved for the request's pricing key
//   - now: The decision time, used for the express surcharge predicate
//
// Returns:
//   - *quote.Quote: A Pending quote with its full line-item breakdown
//   - error: ErrMissingDistance, or construction errors on the inputs
//
// Resolving the rule (including the "no active rule" case) is the caller's
// responsibility; the calculator assumes the rule applies.
func (qc QuoteCalculator) Calculate(
	request *shipment.Request,
	rule *pricing.Rule,
	now time.Time,
) (*quote.Quote, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	distanceKm := request.DistanceKm()
	if distanceKm == nil {
		return nil, ErrMissingDistance
	}

	basePrice, baseCalculation := qc.basePrice(*distanceKm, rule)

	lineItems := []quote.LineItem{{
		Description: "Base price",
		Calculation: baseCalculation,
		Amount:      basePrice,
		LineOrder:   0,
	}}

	surchargeTotal := kernel.Money{}
	appendSurcharge := func(description string, percent float64) {
		amount := basePrice.Percent(percent)
		surchargeTotal = surchargeTotal.Add(amount)
		lineItems = append(lineItems, quote.LineItem{
			Description: description,
			Calculation: fmt.Sprintf("%g%% of %s", percent, basePrice),
			Amount:      amount,
			LineOrder:   len(lineItems),
		})
	}

	if isWeekend(request.PickupDate()) {
		appendSurcharge("Weekend surcharge", rule.WeekendSurchargePercent())
	}
	if request.PickupDate().Sub(now) < expressWindow {
		appendSurcharge("Express surcharge", rule.ExpressSurchargePercent())
	}

	return quote.NewQuote(kernel.NewUUID(), request.ID(), basePrice, surchargeTotal, lineItems, now)
}

// basePrice computes max(distance x rate, minimum), rounding the distance
// component at the cent, and the calculation string shown on the line item.
func (qc QuoteCalculator) basePrice(distanceKm float64, rule *pricing.Rule) (kernel.Money, string) {
	byDistance := kernel.MoneyFromFloat(distanceKm * rule.RatePerKm())
	calculation := fmt.Sprintf("%.2f km x %g %s/km", distanceKm, rule.RatePerKm(), kernel.Currency)

	if byDistance.LessThan(rule.MinimumPrice()) {
		return rule.MinimumPrice(), fmt.Sprintf("minimum price (distance amount %s below %s)",
			byDistance, rule.MinimumPrice())
	}
	return byDistance, calculation
}

func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
