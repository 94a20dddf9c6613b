package commands

import (
	"context"
	"errors"

	"freightmatch/internal/pkg/errs"
)

// ErrQuoteNotFound is returned when the referenced quote does not exist.
var ErrQuoteNotFound = errors.New("quote not found")

// AcceptQuoteCommandHandler records the shipper's acceptance of a quote.
// Acceptance is what makes the associated request eligible for the matching
// job; the job discovers it by querying, no direct scheduling happens here.
type AcceptQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewAcceptQuoteCommandHandler creates a handler for quote acceptance
// operations.
func NewAcceptQuoteCommandHandler(uowFactory QuoteUoWFactory) AcceptQuoteCommandHandler {
	return AcceptQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quote acceptance command. Accepting a non-pending
// quote is a rejected operation surfaced as the domain transition error.
func (h AcceptQuoteCommandHandler) Handle(ctx context.Context, cmd AcceptQuoteCommand) error {
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

	quoteRepo := uow.QuoteRepository()

	quote, err := quoteRepo.Get(ctx, cmd.QuoteID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrQuoteNotFound
	}
	if err != nil {
		return err
	}

	if err = quote.Accept(); err != nil {
		return err
	}

	if err = quoteRepo.Update(ctx, quote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
