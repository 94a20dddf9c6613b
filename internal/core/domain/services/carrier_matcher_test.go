package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/core/domain/services"
)

func floatPtr(v float64) *float64 { return &v }

func geoPoint(t *testing.T, lat, lon float64) *kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return &point
}

func countries(t *testing.T, codes ...string) kernel.CountrySet {
	t.Helper()
	set, err := kernel.NewCountrySet(codes...)
	require.NoError(t, err)
	return set
}

// newRequest builds a DE -> PL LKW request picked up in Berlin.
func newRequest(t *testing.T, mutate func(*shipment.RequestSpec)) *shipment.Request {
	t.Helper()
	cargo, err := shipment.NewPackagesCargo([]shipment.Package{
		{LengthCm: 120, WidthCm: 80, HeightCm: 100, WeightKg: 300},
	})
	require.NoError(t, err)

	spec := shipment.RequestSpec{
		Cargo:              cargo,
		VehicleRequirement: shipment.VehicleLKW,
		PickupLocation:     geoPoint(t, 52.52, 13.405),
		DeliveryLocation:   geoPoint(t, 52.2297, 21.0122),
		PickupCountry:      "DE",
		DeliveryCountry:    "PL",
		DistanceKm:         floatPtr(570),
		PickupDate:         time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC),
	}
	if mutate != nil {
		mutate(&spec)
	}

	request, err := shipment.NewRequest(kernel.NewUUID(), spec, time.Now())
	require.NoError(t, err)
	return request
}

// newCarrier builds an LKW carrier based near Berlin covering DE -> PL.
func newCarrier(t *testing.T, mutate func(*carrier.CarrierSpec)) *carrier.Carrier {
	t.Helper()
	spec := carrier.CarrierSpec{
		Name:              "Spedition Nord GmbH",
		Location:          geoPoint(t, 52.4, 13.1),
		ServiceRadiusKm:   floatPtr(300),
		HasTransporter:    true,
		HasLKW:            true,
		PickupCountries:   countries(t, "DE", "AT"),
		DeliveryCountries: countries(t, "DE", "PL"),
		Active:            true,
	}
	if mutate != nil {
		mutate(&spec)
	}

	c, err := carrier.NewCarrier(kernel.NewUUID(), spec)
	require.NoError(t, err)
	return c
}

func TestCarrierMatcher_Match(t *testing.T) {
	matcher := services.NewCarrierMatcher()

	t.Run("should keep only carriers with the required vehicle", func(t *testing.T) {
		request := newRequest(t, nil)
		withLKW := newCarrier(t, nil)
		withoutLKW := newCarrier(t, func(s *carrier.CarrierSpec) { s.HasLKW = false })

		candidates, err := matcher.Match(request, []*carrier.Carrier{withoutLKW, withLKW})

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.True(t, candidates[0].Carrier.IsEqual(withLKW))
	})

	t.Run("should keep all carriers for either requirement", func(t *testing.T) {
		request := newRequest(t, func(s *shipment.RequestSpec) {
			s.VehicleRequirement = shipment.VehicleEither
		})
		transporterOnly := newCarrier(t, func(s *carrier.CarrierSpec) { s.HasLKW = false })
		lkwOnly := newCarrier(t, func(s *carrier.CarrierSpec) { s.HasTransporter = false })

		candidates, err := matcher.Match(request, []*carrier.Carrier{transporterOnly, lkwOnly})

		require.NoError(t, err)
		assert.Len(t, candidates, 2)
	})

	t.Run("should require both route countries to be covered", func(t *testing.T) {
		request := newRequest(t, nil)
		carrierA := newCarrier(t, nil) // pickup DE,AT / delivery DE,PL
		carrierB := newCarrier(t, func(s *carrier.CarrierSpec) {
			s.PickupCountries = countries(t, "DE")
			s.DeliveryCountries = countries(t, "DE", "AT")
		})

		candidates, err := matcher.Match(request, []*carrier.Carrier{carrierA, carrierB})

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.True(t, candidates[0].Carrier.IsEqual(carrierA))
	})

	t.Run("should skip coverage filter when a request country is missing", func(t *testing.T) {
		request := newRequest(t, func(s *shipment.RequestSpec) { s.DeliveryCountry = "" })
		uncovered := newCarrier(t, func(s *carrier.CarrierSpec) {
			s.PickupCountries = countries(t, "FR")
			s.DeliveryCountries = countries(t, "FR")
		})

		candidates, err := matcher.Match(request, []*carrier.Carrier{uncovered})

		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})

	t.Run("should exclude carriers with empty coverage when filter is active", func(t *testing.T) {
		request := newRequest(t, nil)
		noCoverage := newCarrier(t, func(s *carrier.CarrierSpec) {
			s.PickupCountries = kernel.CountrySet{}
		})

		candidates, err := matcher.Match(request, []*carrier.Carrier{noCoverage})

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("should exclude carriers outside their service radius", func(t *testing.T) {
		request := newRequest(t, nil)
		// Madrid is far beyond a 300km radius from Berlin.
		faraway := newCarrier(t, func(s *carrier.CarrierSpec) {
			s.Location = geoPoint(t, 40.4168, -3.7038)
			s.PickupCountries = countries(t, "DE", "ES")
			s.DeliveryCountries = countries(t, "DE", "PL")
		})

		candidates, err := matcher.Match(request, []*carrier.Carrier{faraway})

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("should keep radius-ignoring carriers regardless of distance", func(t *testing.T) {
		request := newRequest(t, nil)
		faraway := newCarrier(t, func(s *carrier.CarrierSpec) {
			s.Location = geoPoint(t, 40.4168, -3.7038)
			s.ServiceRadiusKm = floatPtr(100)
			s.IgnoreRadius = true
			s.PickupCountries = countries(t, "DE", "ES")
			s.DeliveryCountries = countries(t, "DE", "PL")
		})

		candidates, err := matcher.Match(request, []*carrier.Carrier{faraway})

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.True(t, candidates[0].InRadius)
	})

	t.Run("should exclude carriers without coordinates or radius", func(t *testing.T) {
		request := newRequest(t, nil)
		noLocation := newCarrier(t, func(s *carrier.CarrierSpec) { s.Location = nil })
		noRadius := newCarrier(t, func(s *carrier.CarrierSpec) { s.ServiceRadiusKm = nil })

		candidates, err := matcher.Match(request, []*carrier.Carrier{noLocation, noRadius})

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("should skip radius filter when request lacks pickup coordinates", func(t *testing.T) {
		request := newRequest(t, func(s *shipment.RequestSpec) { s.PickupLocation = nil })
		noLocation := newCarrier(t, func(s *carrier.CarrierSpec) { s.Location = nil })

		candidates, err := matcher.Match(request, []*carrier.Carrier{noLocation})

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.False(t, candidates[0].InRadius)
		assert.Nil(t, candidates[0].DistanceToPickupKm)
	})

	t.Run("should pass capacity check when carrier box is unspecified", func(t *testing.T) {
		request := newRequest(t, nil)
		unspecifiedBox := newCarrier(t, nil)

		candidates, err := matcher.Match(request, []*carrier.Carrier{unspecifiedBox})

		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})

	t.Run("should exclude carriers with a too small box", func(t *testing.T) {
		request := newRequest(t, nil) // packages up to 120cm long
		smallBox := newCarrier(t, func(s *carrier.CarrierSpec) {
			s.BoxLengthCm = floatPtr(100)
			s.BoxWidthCm = floatPtr(200)
			s.BoxHeightCm = floatPtr(200)
		})

		candidates, err := matcher.Match(request, []*carrier.Carrier{smallBox})

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("should skip capacity filter for non-lkw requirements", func(t *testing.T) {
		request := newRequest(t, func(s *shipment.RequestSpec) {
			s.VehicleRequirement = shipment.VehicleTransporter
		})
		tinyBox := newCarrier(t, func(s *carrier.CarrierSpec) {
			s.BoxLengthCm = floatPtr(1)
			s.BoxWidthCm = floatPtr(1)
			s.BoxHeightCm = floatPtr(1)
		})

		candidates, err := matcher.Match(request, []*carrier.Carrier{tinyBox})

		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})

	t.Run("should strictly require equipment", func(t *testing.T) {
		request := newRequest(t, func(s *shipment.RequestSpec) {
			s.Equipment = shipment.EquipmentRequirements{Liftgate: true, GPSTracking: true}
		})
		fullyEquipped := newCarrier(t, func(s *carrier.CarrierSpec) {
			s.Equipment = carrier.Equipment{Liftgate: true, GPSTracking: true, Tarp: true}
		})
		missingOne := newCarrier(t, func(s *carrier.CarrierSpec) {
			s.Equipment = carrier.Equipment{Liftgate: true}
		})

		candidates, err := matcher.Match(request, []*carrier.Carrier{fullyEquipped, missingOne})

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.True(t, candidates[0].Carrier.IsEqual(fullyEquipped))
	})

	t.Run("should record rounded distances on candidates", func(t *testing.T) {
		request := newRequest(t, nil)
		c := newCarrier(t, nil)

		candidates, err := matcher.Match(request, []*carrier.Carrier{c})

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		candidate := candidates[0]
		require.NotNil(t, candidate.DistanceToPickupKm)
		require.NotNil(t, candidate.DistanceToDeliveryKm)
		assert.True(t, candidate.InRadius)
		// Berlin suburb to Berlin pickup is a short hop; delivery is Warsaw.
		assert.InDelta(t, 25, *candidate.DistanceToPickupKm, 10)
		assert.InDelta(t, 530, *candidate.DistanceToDeliveryKm, 20)
		assert.Equal(t, kernel.RoundKm(*candidate.DistanceToPickupKm), *candidate.DistanceToPickupKm)
	})

	t.Run("should return empty result for empty pool", func(t *testing.T) {
		request := newRequest(t, nil)

		candidates, err := matcher.Match(request, nil)

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("should return error for unconstructed request", func(t *testing.T) {
		candidates, err := matcher.Match(&shipment.Request{}, nil)

		require.Error(t, err)
		assert.Nil(t, candidates)
	})
}
