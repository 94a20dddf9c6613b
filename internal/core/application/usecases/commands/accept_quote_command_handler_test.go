package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/quote"
	"freightmatch/internal/pkg/errs"
)

func TestAcceptQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pendingQuote := newTestQuote(t, kernel.NewUUID())
	cmd, err := commands.NewAcceptQuoteCommand(pendingQuote.ID())
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", ctx, pendingQuote.ID()).Return(pendingQuote, nil).Once(),
		quoteRepo.On("Update", ctx, pendingQuote).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptQuoteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, quote.StatusAccepted, pendingQuote.Status())
	quoteRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptQuoteCommandHandler_Handle_AlreadyDecided(t *testing.T) {
	ctx := t.Context()
	decidedQuote := newTestQuote(t, kernel.NewUUID())
	require.NoError(t, decidedQuote.Decline())
	cmd, err := commands.NewAcceptQuoteCommand(decidedQuote.ID())
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", ctx, decidedQuote.ID()).Return(decidedQuote, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptQuoteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, quote.StatusDeclined, decidedQuote.Status())
	quoteRepo.AssertNotCalled(t, "Update", ctx, decidedQuote)
}

func TestDeclineQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pendingQuote := newTestQuote(t, kernel.NewUUID())
	cmd, err := commands.NewDeclineQuoteCommand(pendingQuote.ID())
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", ctx, pendingQuote.ID()).Return(pendingQuote, nil).Once(),
		quoteRepo.On("Update", ctx, pendingQuote).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeclineQuoteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, quote.StatusDeclined, pendingQuote.Status())
}

func TestAcceptQuoteCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAcceptQuoteCommand(kernel.NewUUID())
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", ctx, mock.Anything).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptQuoteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrQuoteNotFound)
}
