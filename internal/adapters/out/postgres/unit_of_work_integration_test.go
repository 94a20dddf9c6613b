package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "freightmatch/internal/adapters/out/postgres"
	"freightmatch/internal/adapters/out/postgres/carrierrepo"
	"freightmatch/internal/adapters/out/postgres/matchrepo"
	"freightmatch/internal/adapters/out/postgres/pricingrepo"
	"freightmatch/internal/adapters/out/postgres/quoterepo"
	"freightmatch/internal/adapters/out/postgres/shipmentrequestrepo"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/core/ports"
	"freightmatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&shipmentrequestrepo.ShipmentRequestDTO{},
		&carrierrepo.CarrierDTO{},
		&matchrepo.CarrierRequestDTO{},
		&quoterepo.QuoteDTO{},
		&quoterepo.LineItemDTO{},
		&pricingrepo.PricingRuleDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE quote_line_items, quotes, carrier_requests, carriers, shipment_requests, pricing_rules",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ShipmentRequestRepository(), "First instance should provide shipment request repository")
	suite.NotNil(uow1.CarrierRepository(), "First instance should provide carrier repository")
	suite.NotNil(uow1.CarrierRequestRepository(), "First instance should provide carrier request repository")
	suite.NotNil(uow2.QuoteRepository(), "Second instance should provide quote repository")
	suite.NotNil(uow2.PricingRuleRepository(), "Second instance should provide pricing rule repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_RollbackDiscardsChanges verifies that rolled-back writes
// never become visible outside the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	request := suite.createTestRequest()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRequestRepository().Add(ctx, request))
	suite.Require().NoError(uow.Rollback(ctx))

	verification := suite.factory.Create()
	_, err := verification.ShipmentRequestRepository().Get(ctx, request.ID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_MultiRepositoryTransaction verifies the accept-offer shape:
// match records and the shipment request move atomically in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()

	request := suite.createTestRequest()
	suite.Require().NoError(request.StartMatching())

	distance := 25.0
	record, err := match.NewCarrierRequest(
		kernel.NewUUID(), request.ID(), kernel.NewUUID(),
		&distance, nil, true, time.Now().UTC(),
	)
	suite.Require().NoError(err)

	// Seed both aggregates
	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.ShipmentRequestRepository().Add(ctx, request))
	suite.Require().NoError(seed.CarrierRequestRepository().Add(ctx, record))
	suite.Require().NoError(seed.Commit(ctx))

	// Advance the offer lifecycle and the request status in one transaction
	suite.Require().NoError(record.MarkSent())
	suite.Require().NoError(record.SubmitOffer(match.Offer{Price: kernel.MoneyFromCents(65000)}))
	suite.Require().NoError(record.Win())
	suite.Require().NoError(request.MarkMatched(record.CarrierID()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CarrierRequestRepository().Update(ctx, record))
	suite.Require().NoError(uow.ShipmentRequestRepository().Update(ctx, request))
	suite.Require().NoError(uow.Commit(ctx))

	// Verify both writes landed
	verification := suite.factory.Create()
	retrievedRecord, err := verification.CarrierRequestRepository().Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.Equal(match.StatusWon, retrievedRecord.Status())

	retrievedRequest, err := verification.ShipmentRequestRepository().Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusMatched, retrievedRequest.Status())
}

// createTestRequest builds a minimal vehicle-booking request.
func (suite *UnitOfWorkIntegrationTestSuite) createTestRequest() *shipment.Request {
	cargo, err := shipment.NewVehicleBookingCargo("lkw")
	suite.Require().NoError(err)

	distance := 570.0
	request, err := shipment.NewRequest(kernel.NewUUID(), shipment.RequestSpec{
		Cargo:              cargo,
		VehicleRequirement: shipment.VehicleLKW,
		PickupCountry:      "DE",
		DeliveryCountry:    "PL",
		DistanceKm:         &distance,
		PickupDate:         time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
	}, time.Now().UTC())
	suite.Require().NoError(err)
	return request
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
