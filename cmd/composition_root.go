package cmd

import (
	"log/slog"

	"freightmatch/internal/adapters/out/postgres"
	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.InvitationNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	notifier ports.InvitationNotifier,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) ShipmentRequestUoWFactory() commands.ShipmentRequestUoWFactory {
	return FuncShipmentRequestUoWFactory(func() commands.ShipmentRequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) DispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentRequestCommandHandler() commands.CreateShipmentRequestCommandHandler {
	return commands.NewCreateShipmentRequestCommandHandler(c.ShipmentRequestUoWFactory())
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateCalculateQuoteCommandHandler() commands.CalculateQuoteCommandHandler {
	var f commands.CalculateQuoteUoWFactory = FuncCalculateQuoteUoWFactory(func() commands.CalculateQuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCalculateQuoteCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptQuoteCommandHandler() commands.AcceptQuoteCommandHandler {
	return commands.NewAcceptQuoteCommandHandler(c.quoteUoWFactory())
}

func (c *CompositionRoot) CreateDeclineQuoteCommandHandler() commands.DeclineQuoteCommandHandler {
	return commands.NewDeclineQuoteCommandHandler(c.quoteUoWFactory())
}

func (c *CompositionRoot) CreateRunMatchingCommandHandler() commands.RunMatchingCommandHandler {
	var f commands.MatchingUoWFactory = FuncMatchingUoWFactory(func() commands.MatchingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRunMatchingCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchInvitationsCommandHandler() commands.DispatchInvitationsCommandHandler {
	return commands.NewDispatchInvitationsCommandHandler(c.DispatchUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateSubmitOfferCommandHandler() commands.SubmitOfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	var f commands.AcceptOfferUoWFactory = FuncAcceptOfferUoWFactory(func() commands.AcceptOfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelShipmentRequestCommandHandler() commands.CancelShipmentRequestCommandHandler {
	return commands.NewCancelShipmentRequestCommandHandler(c.ShipmentRequestUoWFactory())
}

func (c *CompositionRoot) CreateGetUncompletedRequestsQueryHandler() queries.GetUncompletedRequestsQueryHandler {
	return queries.NewGetUncompletedRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMatchesForRequestQueryHandler() queries.GetMatchesForRequestQueryHandler {
	return queries.NewGetMatchesForRequestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) quoteUoWFactory() commands.QuoteUoWFactory {
	return FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentRequestUoWFactory func() commands.ShipmentRequestUoW

func (f FuncShipmentRequestUoWFactory) Create() commands.ShipmentRequestUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncCalculateQuoteUoWFactory func() commands.CalculateQuoteUoW

func (f FuncCalculateQuoteUoWFactory) Create() commands.CalculateQuoteUoW {
	return f()
}

type FuncMatchingUoWFactory func() commands.MatchingUoW

func (f FuncMatchingUoWFactory) Create() commands.MatchingUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncAcceptOfferUoWFactory func() commands.AcceptOfferUoW

func (f FuncAcceptOfferUoWFactory) Create() commands.AcceptOfferUoW {
	return f()
}
