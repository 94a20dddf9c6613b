package commands

import (
	"context"
	"errors"

	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/pkg/errs"
)

// ErrCarrierRequestNotFound is returned when the referenced match record
// does not exist.
var ErrCarrierRequestNotFound = errors.New("carrier request not found")

// SubmitOfferCommandHandler records a carrier's offer on its match record,
// transitioning it Sent -> Offered.
type SubmitOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewSubmitOfferCommandHandler creates a handler for offer submission
// operations.
func NewSubmitOfferCommandHandler(uowFactory OfferUoWFactory) SubmitOfferCommandHandler {
	return SubmitOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer submission command.
func (h SubmitOfferCommandHandler) Handle(ctx context.Context, cmd SubmitOfferCommand) error {
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

	record, err := matchRepo.Get(ctx, cmd.CarrierRequestID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCarrierRequestNotFound
	}
	if err != nil {
		return err
	}

	offer := match.Offer{
		Price:        cmd.Price(),
		DeliveryDate: cmd.DeliveryDate(),
		Note:         cmd.Note(),
	}
	if err = record.SubmitOffer(offer); err != nil {
		return err
	}

	if err = matchRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
