package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/pkg/errs"
)

func TestAcceptOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	request := restoreRequest(t, shipment.StatusMatching)
	winner := restoreCarrierRequest(t, request.ID(), match.StatusOffered)
	sibling := restoreCarrierRequest(t, request.ID(), match.StatusOffered)

	cmd, err := commands.NewAcceptOfferCommand(winner.ID())
	require.NoError(t, err)

	matchRepo := new(MockCarrierRequestRepository)
	requestRepo := new(MockShipmentRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRequestRepository").Return(matchRepo).Once(),
		matchRepo.On("Get", ctx, winner.ID()).Return(winner, nil).Once(),
		matchRepo.On("GetAllOfferedForRequest", ctx, request.ID()).
			Return([]*match.CarrierRequest{winner, sibling}, nil).Once(),
		matchRepo.On("Update", ctx, winner).Return(nil).Once(),
		matchRepo.On("Update", ctx, sibling).Return(nil).Once(),
		uow.On("ShipmentRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		requestRepo.On("Update", ctx, request).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOfferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, match.StatusWon, winner.Status())
	assert.Equal(t, match.StatusRejected, sibling.Status())
	assert.Equal(t, shipment.StatusMatched, request.Status())
	require.NotNil(t, request.MatchedCarrierID())
	assert.True(t, request.MatchedCarrierID().IsEqual(winner.CarrierID()))
	matchRepo.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOfferCommandHandler_Handle_WinnerNotOffered(t *testing.T) {
	ctx := t.Context()
	request := restoreRequest(t, shipment.StatusMatching)
	notOffered := restoreCarrierRequest(t, request.ID(), match.StatusSent)

	cmd, err := commands.NewAcceptOfferCommand(notOffered.ID())
	require.NoError(t, err)

	matchRepo := new(MockCarrierRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRequestRepository").Return(matchRepo).Once(),
		matchRepo.On("Get", ctx, notOffered.ID()).Return(notOffered, nil).Once(),
		matchRepo.On("GetAllOfferedForRequest", ctx, request.ID()).
			Return([]*match.CarrierRequest{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOfferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, match.StatusSent, notOffered.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAcceptOfferCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	request := restoreRequest(t, shipment.StatusMatching)
	winner := restoreCarrierRequest(t, request.ID(), match.StatusOffered)

	cmd, err := commands.NewAcceptOfferCommand(winner.ID())
	require.NoError(t, err)

	matchRepo := new(MockCarrierRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRequestRepository").Return(matchRepo).Once(),
		matchRepo.On("Get", ctx, winner.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOfferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCarrierRequestNotFound)
}
