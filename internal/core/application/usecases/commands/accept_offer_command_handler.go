package commands

import (
	"context"
	"errors"

	"freightmatch/internal/pkg/errs"
)

// AcceptOfferCommandHandler executes the three-part offer acceptance as one
// transaction: the winning match record transitions Offered -> Won, every
// other Offered sibling of the same request transitions to Rejected, and the
// parent request transitions Matching -> Matched with its matched carrier
// set. Partial application is never observable; any failure rolls back all
// three parts.
type AcceptOfferCommandHandler struct {
	uowFactory AcceptOfferUoWFactory
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance
// operations.
func NewAcceptOfferCommandHandler(uowFactory AcceptOfferUoWFactory) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer acceptance command.
func (h AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) error {
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

	matchRepo := uow.CarrierRequestRepository()

	winner, err := matchRepo.Get(ctx, cmd.CarrierRequestID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCarrierRequestNotFound
	}
	if err != nil {
		return err
	}

	siblings, err := matchRepo.GetAllOfferedForRequest(ctx, winner.RequestID())
	if err != nil {
		return err
	}

	if err = winner.Win(); err != nil {
		return err
	}
	if err = matchRepo.Update(ctx, winner); err != nil {
		return err
	}

	for _, sibling := range siblings {
		if sibling.IsEqual(winner) {
			continue
		}
		if err = sibling.Reject(); err != nil {
			return err
		}
		if err = matchRepo.Update(ctx, sibling); err != nil {
			return err
		}
	}

	requestRepo := uow.ShipmentRequestRepository()

	request, err := requestRepo.Get(ctx, winner.RequestID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRequestNotFound
	}
	if err != nil {
		return err
	}

	if err = request.MarkMatched(winner.CarrierID()); err != nil {
		return err
	}
	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
