package commands

import (
	"context"
	"errors"

	"freightmatch/internal/pkg/errs"
)

// CancelShipmentRequestCommandHandler withdraws a shipment request.
// Cancelling is valid from any non-terminal status; the domain transition
// rejects attempts on Delivered or already Cancelled requests.
type CancelShipmentRequestCommandHandler struct {
	uowFactory ShipmentRequestUoWFactory
}

// NewCancelShipmentRequestCommandHandler creates a handler for request
// cancellation operations.
func NewCancelShipmentRequestCommandHandler(
	uowFactory ShipmentRequestUoWFactory,
) CancelShipmentRequestCommandHandler {
	return CancelShipmentRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelShipmentRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CancelShipmentRequestCommand,
) error {
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

	requestRepo := uow.ShipmentRequestRepository()

	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRequestNotFound
	}
	if err != nil {
		return err
	}

	if err = request.Cancel(); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
