package commands

import (
	"context"
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/services"
	"freightmatch/internal/pkg/errs"
)

// RunMatchingCommandHandler executes one matching run for a shipment
// request: it claims the request by transitioning New -> Matching, runs the
// filter pipeline over all matchable carriers and persists one New match
// record per surviving candidate.
//
// Zero candidates is not an error: the request is reset to New and the run
// reports a count of zero. Re-running for the same request creates
// additional match records.
//
// Example:
//
//	handler := NewRunMatchingCommandHandler(uowFactory)
//	cmd, _ := NewRunMatchingCommand(requestID)
//	count, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("matching run failed: %w", err)
//	}
//	if count == 0 {
//	    log.Println("No carriers matched; request reset to New")
//	}
type RunMatchingCommandHandler struct {
	uowFactory MatchingUoWFactory
}

// NewRunMatchingCommandHandler creates a handler for matching run operations.
func NewRunMatchingCommandHandler(uowFactory MatchingUoWFactory) RunMatchingCommandHandler {
	return RunMatchingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the matching run command and returns the number of match
// records created. The precondition (request in New status) is enforced by
// the aggregate's StartMatching transition.
func (h RunMatchingCommandHandler) Handle(ctx context.Context, cmd RunMatchingCommand) (int, error) {
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

	requestRepo := uow.ShipmentRequestRepository()

	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, ErrRequestNotFound
	}
	if err != nil {
		return 0, err
	}

	if err = request.StartMatching(); err != nil {
		return 0, err
	}

	pool, err := uow.CarrierRepository().GetAllMatchable(ctx)
	if err != nil {
		return 0, err
	}

	candidates, err := services.NewCarrierMatcher().Match(request, pool)
	if err != nil {
		return 0, err
	}

	if len(candidates) == 0 {
		if err = request.ResetToNew(); err != nil {
			return 0, err
		}
		if err = requestRepo.Update(ctx, request); err != nil {
			return 0, err
		}
		return 0, uow.Commit(ctx)
	}

	matchRepo := uow.CarrierRequestRepository()
	now := time.Now()

	for _, candidate := range candidates {
		record, err := match.NewCarrierRequest(
			kernel.NewUUID(),
			request.ID(),
			candidate.Carrier.ID(),
			candidate.DistanceToPickupKm,
			candidate.DistanceToDeliveryKm,
			candidate.InRadius,
			now,
		)
		if err != nil {
			return 0, err
		}

		if err = matchRepo.Add(ctx, record); err != nil {
			return 0, err
		}
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(candidates), nil
}
