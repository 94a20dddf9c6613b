package kernel_test

import (
	"testing"

	"freightmatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"valid coordinates", 52.52, 13.405, false},
		{"boundary north pole", 90, 0, false},
		{"boundary south pole", -90, 0, false},
		{"boundary date line", 0, 180, false},
		{"boundary anti date line", 0, -180, false},
		{"latitude too large", 90.0001, 0, true},
		{"latitude too small", -91, 0, true},
		{"longitude too large", 0, 180.5, true},
		{"longitude too small", 0, -181, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.lat, tt.lon)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NoError(t, point.Validate())
			assert.InDelta(t, tt.lat, point.Latitude(), 1e-9)
			assert.InDelta(t, tt.lon, point.Longitude(), 1e-9)
		})
	}
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var point kernel.GeoPoint

	err := point.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	berlin, err := kernel.NewGeoPoint(52.5200, 13.4050)
	require.NoError(t, err)
	warsaw, err := kernel.NewGeoPoint(52.2297, 21.0122)
	require.NoError(t, err)

	t.Run("known city pair", func(t *testing.T) {
		distance, err := berlin.DistanceTo(warsaw)

		require.NoError(t, err)
		// Great-circle Berlin-Warsaw is roughly 516 km.
		assert.InDelta(t, 516, distance, 5)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		forward, err := berlin.DistanceTo(warsaw)
		require.NoError(t, err)
		backward, err := warsaw.DistanceTo(berlin)
		require.NoError(t, err)

		assert.InDelta(t, forward, backward, 1e-9)
	})

	t.Run("distance to self is zero", func(t *testing.T) {
		distance, err := berlin.DistanceTo(berlin)

		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 1e-9)
	})

	t.Run("zero value point fails", func(t *testing.T) {
		var invalid kernel.GeoPoint

		_, err := berlin.DistanceTo(invalid)

		require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestDistanceBetween_NullPropagation(t *testing.T) {
	point, err := kernel.NewGeoPoint(48.1351, 11.5820)
	require.NoError(t, err)

	t.Run("nil from yields nil", func(t *testing.T) {
		assert.Nil(t, kernel.DistanceBetween(nil, &point))
	})

	t.Run("nil to yields nil", func(t *testing.T) {
		assert.Nil(t, kernel.DistanceBetween(&point, nil))
	})

	t.Run("both nil yields nil", func(t *testing.T) {
		assert.Nil(t, kernel.DistanceBetween(nil, nil))
	})

	t.Run("unconstructed point yields nil", func(t *testing.T) {
		var invalid kernel.GeoPoint
		assert.Nil(t, kernel.DistanceBetween(&invalid, &point))
	})

	t.Run("both present yields distance", func(t *testing.T) {
		other, err := kernel.NewGeoPoint(50.1109, 8.6821)
		require.NoError(t, err)

		distance := kernel.DistanceBetween(&point, &other)

		require.NotNil(t, distance)
		assert.Positive(t, *distance)
	})
}

func TestRoundKm(t *testing.T) {
	assert.InDelta(t, 12.35, kernel.RoundKm(12.345), 1e-9)
	assert.InDelta(t, 12.34, kernel.RoundKm(12.344), 1e-9)
	assert.InDelta(t, 0, kernel.RoundKm(0), 1e-9)
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(48.8566, 2.3522)
	require.NoError(t, err)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)
}
