package commands

import (
	"context"
	"time"

	"freightmatch/internal/core/domain/model/shipment"
)

// CreateShipmentRequestCommandHandler handles the business logic for
// shipment request creation. New requests start in New status and wait for a
// quote before they can enter matching.
type CreateShipmentRequestCommandHandler struct {
	uowFactory ShipmentRequestUoWFactory
}

// NewCreateShipmentRequestCommandHandler creates a handler for shipment
// request creation operations.
func NewCreateShipmentRequestCommandHandler(
	uowFactory ShipmentRequestUoWFactory,
) CreateShipmentRequestCommandHandler {
	return CreateShipmentRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment request creation command.
func (h CreateShipmentRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentRequestCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	request, err := shipment.NewRequest(cmd.RequestID(), cmd.Spec(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
