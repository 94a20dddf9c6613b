package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/pricing"
	"freightmatch/internal/core/domain/model/quote"
	"freightmatch/internal/core/domain/model/shipment"
)

func floatPtr(v float64) *float64 { return &v }

func testRequestSpec(t *testing.T) shipment.RequestSpec {
	t.Helper()
	cargo, err := shipment.NewPackagesCargo([]shipment.Package{
		{LengthCm: 120, WidthCm: 80, HeightCm: 100, WeightKg: 300},
	})
	require.NoError(t, err)

	pickup, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	delivery, err := kernel.NewGeoPoint(52.2297, 21.0122)
	require.NoError(t, err)

	return shipment.RequestSpec{
		Cargo:              cargo,
		VehicleRequirement: shipment.VehicleLKW,
		PickupLocation:     &pickup,
		DeliveryLocation:   &delivery,
		PickupCountry:      "DE",
		DeliveryCountry:    "PL",
		DistanceKm:         floatPtr(570),
		PickupDate:         time.Date(2026, 3, 18, 8, 0, 0, 0, time.UTC),
	}
}

// newTestRequest builds a request in New status.
func newTestRequest(t *testing.T) *shipment.Request {
	t.Helper()
	request, err := shipment.NewRequest(kernel.NewUUID(), testRequestSpec(t), time.Now())
	require.NoError(t, err)
	return request
}

// restoreRequest builds a request in the given status.
func restoreRequest(t *testing.T, status shipment.Status) *shipment.Request {
	t.Helper()
	request, err := shipment.RestoreRequest(
		kernel.NewUUID(), testRequestSpec(t), status, nil, time.Now())
	require.NoError(t, err)
	return request
}

func newTestCarrier(t *testing.T) *carrier.Carrier {
	t.Helper()
	location, err := kernel.NewGeoPoint(52.4, 13.1)
	require.NoError(t, err)
	coverage, err := kernel.NewCountrySet("DE", "PL")
	require.NoError(t, err)

	c, err := carrier.NewCarrier(kernel.NewUUID(), carrier.CarrierSpec{
		Name:              "Spedition Nord GmbH",
		Location:          &location,
		ServiceRadiusKm:   floatPtr(300),
		HasTransporter:    true,
		HasLKW:            true,
		PickupCountries:   coverage,
		DeliveryCountries: coverage,
		Active:            true,
	})
	require.NoError(t, err)
	return c
}

// restoreCarrierRequest builds a match record for requestID in the given status.
func restoreCarrierRequest(
	t *testing.T,
	requestID kernel.UUID,
	status match.Status,
) *match.CarrierRequest {
	t.Helper()
	var price *kernel.Money
	if status == match.StatusOffered {
		p := kernel.MoneyFromCents(65000)
		price = &p
	}

	record, err := match.RestoreCarrierRequest(
		kernel.NewUUID(), requestID, kernel.NewUUID(),
		floatPtr(42.5), floatPtr(480.25), true,
		status, price, nil, "", time.Now())
	require.NoError(t, err)
	return record
}

func newTestQuote(t *testing.T, requestID kernel.UUID) *quote.Quote {
	t.Helper()
	q, err := quote.NewQuote(kernel.NewUUID(), requestID,
		kernel.MoneyFromCents(59850), kernel.Money{},
		[]quote.LineItem{{
			Description: "Base price",
			Calculation: "570.00 km x 1.05 EUR/km",
			Amount:      kernel.MoneyFromCents(59850),
		}},
		time.Now())
	require.NoError(t, err)
	return q
}

func newTestRule(t *testing.T) *pricing.Rule {
	t.Helper()
	rule, err := pricing.NewRule(kernel.NewUUID(), "lkw", 1.0,
		kernel.MoneyFromCents(15000), 20, 30, true)
	require.NoError(t, err)
	return rule
}
