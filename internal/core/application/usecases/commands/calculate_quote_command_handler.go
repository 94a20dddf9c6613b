package commands

import (
	"context"
	"errors"
	"time"

	"freightmatch/internal/core/domain/services"
	"freightmatch/internal/pkg/errs"
)

var (
	// ErrRequestNotFound is returned when the referenced shipment request
	// does not exist.
	ErrRequestNotFound = errors.New("shipment request not found")

	// ErrNoPricingRule is returned when no active pricing rule exists for
	// the request's vehicle type. Recoverable: the caller surfaces it to the
	// user instead of failing the system.
	ErrNoPricingRule = errors.New("no pricing rule for vehicle type")
)

// CalculateQuoteCommandHandler prices one shipment request: it resolves the
// active pricing rule for the request's pricing key, runs the quote
// calculator and persists the quote with its line items in one transaction.
// A quote row without line items is never observable.
//
// Example:
//
//	handler := NewCalculateQuoteCommandHandler(uowFactory)
//	cmd, _ := NewCalculateQuoteCommand(requestID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPricingRule):
//	    // Surface to the user; no quote was created
//	case errors.Is(err, services.ErrMissingDistance):
//	    // Request cannot be priced without a billing distance
//	}
type CalculateQuoteCommandHandler struct {
	uowFactory CalculateQuoteUoWFactory
	now        func() time.Time
}

// NewCalculateQuoteCommandHandler creates a handler for quote calculation
// operations using the wall clock for the express surcharge window.
func NewCalculateQuoteCommandHandler(uowFactory CalculateQuoteUoWFactory) CalculateQuoteCommandHandler {
	return NewCalculateQuoteCommandHandlerWithClock(uowFactory, time.Now)
}

// NewCalculateQuoteCommandHandlerWithClock creates a handler with an
// explicit clock. Used by tests to pin the express surcharge predicate.
func NewCalculateQuoteCommandHandlerWithClock(
	uowFactory CalculateQuoteUoWFactory,
	now func() time.Time,
) CalculateQuoteCommandHandler {
	return CalculateQuoteCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the quote calculation command.
func (h CalculateQuoteCommandHandler) Handle(ctx context.Context, cmd CalculateQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	request, err := uow.ShipmentRequestRepository().Get(ctx, cmd.RequestID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRequestNotFound
	}
	if err != nil {
		return err
	}

	rule, err := uow.PricingRuleRepository().GetActiveByVehicleType(ctx, request.PricingKey())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPricingRule
	}
	if err != nil {
		return err
	}

	quote, err := services.NewQuoteCalculator().Calculate(request, rule, h.now())
	if err != nil {
		return err
	}

	if err = uow.QuoteRepository().Add(ctx, quote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
