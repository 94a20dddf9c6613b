package commands

import (
	"context"

	"freightmatch/internal/core/domain/model/carrier"
)

// CreateCarrierCommandHandler handles the business logic for carrier
// registration.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration
// operations.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier registration command.
func (h CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := carrier.NewCarrier(cmd.CarrierID(), cmd.Spec())
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

	if err = uow.CarrierRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
