package commands

import (
	"context"
	"errors"

	"freightmatch/internal/pkg/errs"
)

// DeclineQuoteCommandHandler records the shipper's refusal of a quote.
type DeclineQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewDeclineQuoteCommandHandler creates a handler for quote refusal
// operations.
func NewDeclineQuoteCommandHandler(uowFactory QuoteUoWFactory) DeclineQuoteCommandHandler {
	return DeclineQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quote refusal command.
func (h DeclineQuoteCommandHandler) Handle(ctx context.Context, cmd DeclineQuoteCommand) error {
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

	if err = quote.Decline(); err != nil {
		return err
	}

	if err = quoteRepo.Update(ctx, quote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
