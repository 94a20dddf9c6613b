package carrier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
)

func floatPtr(v float64) *float64 { return &v }

func validSpec(t *testing.T) carrier.CarrierSpec {
	t.Helper()
	location, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	countries, err := kernel.NewCountrySet("DE", "PL", "FR")
	require.NoError(t, err)

	return carrier.CarrierSpec{
		Name:            "Spedition Nord GmbH",
		Location:        &location,
		ServiceRadiusKm: floatPtr(300),
		HasTransporter:  true,
		HasLKW:          true,
		BoxLengthCm:     floatPtr(720),
		BoxWidthCm:      floatPtr(245),
		BoxHeightCm:     floatPtr(240),
		Equipment: carrier.Equipment{
			Liftgate:   true,
			PalletJack: true,
		},
		PickupCountries:   countries,
		DeliveryCountries: countries,
		Active:            true,
	}
}

func Test_NewCarrier(t *testing.T) {
	id := kernel.NewUUID()

	c, err := carrier.NewCarrier(id, validSpec(t))

	require.NoError(t, err)
	assert.NoError(t, c.Validate())
	assert.True(t, c.ID().IsEqual(id))
	assert.Equal(t, "Spedition Nord GmbH", c.Name())
	assert.True(t, c.HasTransporter())
	assert.True(t, c.HasLKW())
	assert.True(t, c.IsActive())
	assert.False(t, c.IsBlacklisted())
}

func Test_NewCarrier_Invalid(t *testing.T) {
	tests := map[string]func(*carrier.CarrierSpec){
		"empty name":          func(s *carrier.CarrierSpec) { s.Name = "" },
		"negative radius":     func(s *carrier.CarrierSpec) { s.ServiceRadiusKm = floatPtr(-1) },
		"zero box length":     func(s *carrier.CarrierSpec) { s.BoxLengthCm = floatPtr(0) },
		"negative box height": func(s *carrier.CarrierSpec) { s.BoxHeightCm = floatPtr(-10) },
		"unconstructed point": func(s *carrier.CarrierSpec) { s.Location = &kernel.GeoPoint{} },
		"malformed email":     func(s *carrier.CarrierSpec) { s.ContactEmail = "dispatch.example.com" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			spec := validSpec(t)
			mutate(&spec)

			c, err := carrier.NewCarrier(kernel.NewUUID(), spec)

			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func Test_Carrier_SupportsVehicle(t *testing.T) {
	spec := validSpec(t)
	spec.HasLKW = false
	c, err := carrier.NewCarrier(kernel.NewUUID(), spec)
	require.NoError(t, err)

	assert.True(t, c.SupportsVehicle(shipment.VehicleTransporter))
	assert.False(t, c.SupportsVehicle(shipment.VehicleLKW))
	assert.True(t, c.SupportsVehicle(shipment.VehicleEither))
}

func Test_Carrier_CoversRoute(t *testing.T) {
	spec := validSpec(t)
	pickup, err := kernel.NewCountrySet("DE")
	require.NoError(t, err)
	delivery, err := kernel.NewCountrySet("PL", "CZ")
	require.NoError(t, err)
	spec.PickupCountries = pickup
	spec.DeliveryCountries = delivery

	c, err := carrier.NewCarrier(kernel.NewUUID(), spec)
	require.NoError(t, err)

	assert.True(t, c.CoversRoute("DE", "PL"))
	assert.True(t, c.CoversRoute("de", "cz"))
	assert.False(t, c.CoversRoute("PL", "DE"))
	assert.False(t, c.CoversRoute("DE", "FR"))
}

func Test_Carrier_CoversRoute_EmptyCoverage(t *testing.T) {
	spec := validSpec(t)
	spec.PickupCountries = kernel.CountrySet{}

	c, err := carrier.NewCarrier(kernel.NewUUID(), spec)
	require.NoError(t, err)

	assert.False(t, c.CoversRoute("DE", "PL"))
}

func Test_Carrier_HasCapacityFor(t *testing.T) {
	tests := map[string]struct {
		capacity  [3]*float64
		requested [3]*float64
		want      bool
	}{
		"fits": {
			capacity:  [3]*float64{floatPtr(720), floatPtr(245), floatPtr(240)},
			requested: [3]*float64{floatPtr(400), floatPtr(200), floatPtr(200)},
			want:      true,
		},
		"too long": {
			capacity:  [3]*float64{floatPtr(720), floatPtr(245), floatPtr(240)},
			requested: [3]*float64{floatPtr(800), floatPtr(200), floatPtr(200)},
			want:      false,
		},
		"unknown capacity passes": {
			capacity:  [3]*float64{nil, nil, nil},
			requested: [3]*float64{floatPtr(800), floatPtr(300), floatPtr(300)},
			want:      true,
		},
		"unknown request passes": {
			capacity:  [3]*float64{floatPtr(100), floatPtr(100), floatPtr(100)},
			requested: [3]*float64{nil, nil, nil},
			want:      true,
		},
		"partially unknown": {
			capacity:  [3]*float64{floatPtr(720), nil, floatPtr(240)},
			requested: [3]*float64{floatPtr(400), floatPtr(999), floatPtr(250)},
			want:      false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			spec := validSpec(t)
			spec.BoxLengthCm = test.capacity[0]
			spec.BoxWidthCm = test.capacity[1]
			spec.BoxHeightCm = test.capacity[2]
			c, err := carrier.NewCarrier(kernel.NewUUID(), spec)
			require.NoError(t, err)

			got := c.HasCapacityFor(test.requested[0], test.requested[1], test.requested[2])

			assert.Equal(t, test.want, got)
		})
	}
}

func Test_Equipment_Satisfies(t *testing.T) {
	equipment := carrier.Equipment{Liftgate: true, GPSTracking: true}

	assert.True(t, equipment.Satisfies(shipment.EquipmentRequirements{}))
	assert.True(t, equipment.Satisfies(shipment.EquipmentRequirements{Liftgate: true}))
	assert.True(t, equipment.Satisfies(shipment.EquipmentRequirements{Liftgate: true, GPSTracking: true}))
	assert.False(t, equipment.Satisfies(shipment.EquipmentRequirements{PalletJack: true}))
	assert.False(t, equipment.Satisfies(shipment.EquipmentRequirements{Liftgate: true, Tarp: true}))
}

func Test_Carrier_Validate_NotConstructed(t *testing.T) {
	var c carrier.Carrier

	assert.ErrorIs(t, c.Validate(), carrier.ErrCarrierIsNotConstructed)
}
