package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/pricing"
	"freightmatch/internal/core/domain/model/quote"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/core/ports"
)

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetAllMatchable(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

type MockShipmentRequestRepository struct{ mock.Mock }

func (m *MockShipmentRequestRepository) Add(ctx context.Context, aggregate *shipment.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRequestRepository) Update(ctx context.Context, aggregate *shipment.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRequestRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Request), args.Error(1)
}

func (m *MockShipmentRequestRepository) GetFirstAwaitingMatching(ctx context.Context) (*shipment.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Request), args.Error(1)
}

type MockCarrierRequestRepository struct{ mock.Mock }

func (m *MockCarrierRequestRepository) Add(ctx context.Context, aggregate *match.CarrierRequest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRequestRepository) Update(ctx context.Context, aggregate *match.CarrierRequest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRequestRepository) Get(ctx context.Context, id kernel.UUID) (*match.CarrierRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*match.CarrierRequest), args.Error(1)
}

func (m *MockCarrierRequestRepository) GetAllNewForRequest(
	ctx context.Context,
	requestID kernel.UUID,
) ([]*match.CarrierRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*match.CarrierRequest), args.Error(1)
}

func (m *MockCarrierRequestRepository) GetAllOfferedForRequest(
	ctx context.Context,
	requestID kernel.UUID,
) ([]*match.CarrierRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*match.CarrierRequest), args.Error(1)
}

func (m *MockCarrierRequestRepository) GetRequestIDsWithNewMatches(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, aggregate *quote.Quote) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockQuoteRepository) Update(ctx context.Context, aggregate *quote.Quote) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

type MockPricingRuleRepository struct{ mock.Mock }

func (m *MockPricingRuleRepository) GetActiveByVehicleType(
	ctx context.Context,
	vehicleType string,
) (*pricing.Rule, error) {
	args := m.Called(ctx, vehicleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Rule), args.Error(1)
}

// MockUoW implements every unit of work slice the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

func (m *MockUoW) ShipmentRequestRepository() ports.ShipmentRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRequestRepository)
}

func (m *MockUoW) CarrierRequestRepository() ports.CarrierRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRequestRepository)
}

func (m *MockUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

func (m *MockUoW) PricingRuleRepository() ports.PricingRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingRuleRepository)
}

type MockShipmentRequestUoWFactory struct{ mock.Mock }

func (m *MockShipmentRequestUoWFactory) Create() commands.ShipmentRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentRequestUoW)
}

type MockCarrierUoWFactory struct{ mock.Mock }

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	args := m.Called()
	return args.Get(0).(commands.CarrierUoW)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

type MockCalculateQuoteUoWFactory struct{ mock.Mock }

func (m *MockCalculateQuoteUoWFactory) Create() commands.CalculateQuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.CalculateQuoteUoW)
}

type MockMatchingUoWFactory struct{ mock.Mock }

func (m *MockMatchingUoWFactory) Create() commands.MatchingUoW {
	args := m.Called()
	return args.Get(0).(commands.MatchingUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockOfferUoWFactory struct{ mock.Mock }

func (m *MockOfferUoWFactory) Create() commands.OfferUoW {
	args := m.Called()
	return args.Get(0).(commands.OfferUoW)
}

type MockAcceptOfferUoWFactory struct{ mock.Mock }

func (m *MockAcceptOfferUoWFactory) Create() commands.AcceptOfferUoW {
	args := m.Called()
	return args.Get(0).(commands.AcceptOfferUoW)
}

type MockInvitationNotifier struct{ mock.Mock }

func (m *MockInvitationNotifier) SendInvitation(
	ctx context.Context,
	recipient *carrier.Carrier,
	request *shipment.Request,
	carrierRequest *match.CarrierRequest,
) error {
	args := m.Called(ctx, recipient, request, carrierRequest)
	return args.Error(0)
}
