package commands

import (
	"context"
	"errors"
	"log/slog"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/core/ports"
	"freightmatch/internal/pkg/errs"
)

// DispatchInvitationsCommandHandler sends the pending invitations of one
// shipment request. It works claim-then-act: inside one transaction the New
// match records are selected with a row lock and transitioned to Sent, then
// after commit the invitations go out. A notifier failure for one carrier is
// logged and does not block the rest of the batch; the record stays Sent
// because the claim is the source of truth, not the delivery.
//
// The handler is idempotent per request: it only acts on New records, so
// re-running after a crash or on an out-of-order schedule is safe.
type DispatchInvitationsCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.InvitationNotifier
	logger     *slog.Logger
}

// NewDispatchInvitationsCommandHandler creates a handler for invitation
// dispatch operations.
func NewDispatchInvitationsCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.InvitationNotifier,
	logger *slog.Logger,
) DispatchInvitationsCommandHandler {
	return DispatchInvitationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "dispatch_invitations"),
	}
}

// Handle processes the dispatch command and returns the number of
// invitations claimed and sent out.
func (h DispatchInvitationsCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchInvitationsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	matchRepo := uow.CarrierRequestRepository()

	records, err := matchRepo.GetAllNewForRequest(ctx, cmd.RequestID())
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, uow.Commit(ctx)
	}

	request, err := uow.ShipmentRequestRepository().Get(ctx, cmd.RequestID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, ErrRequestNotFound
	}
	if err != nil {
		return 0, err
	}

	carrierRepo := uow.CarrierRepository()
	recipients := make([]*carrier.Carrier, 0, len(records))

	for _, record := range records {
		recipient, err := carrierRepo.Get(ctx, record.CarrierID())
		if err != nil {
			return 0, err
		}

		if err = record.MarkSent(); err != nil {
			return 0, err
		}
		if err = matchRepo.Update(ctx, record); err != nil {
			return 0, err
		}

		recipients = append(recipients, recipient)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.sendInvitations(ctx, request, records, recipients)
	return len(records), nil
}

// sendInvitations runs after the claim was committed. Failures are logged
// per carrier and never propagated.
func (h DispatchInvitationsCommandHandler) sendInvitations(
	ctx context.Context,
	request *shipment.Request,
	records []*match.CarrierRequest,
	recipients []*carrier.Carrier,
) {
	for i, record := range records {
		if err := h.notifier.SendInvitation(ctx, recipients[i], request, record); err != nil {
			h.logger.Error("failed to send invitation",
				"carrierRequestId", record.ID().String(),
				"carrierId", record.CarrierID().String(),
				"error", err)
		}
	}
}
