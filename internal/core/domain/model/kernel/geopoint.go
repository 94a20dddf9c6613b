package kernel

import (
	"fmt"
	"math"

	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in degrees.
	MaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
// GeoPoints must be created via the NewGeoPoint constructor to ensure coordinate validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate pair in decimal degrees.
// GeoPoint is an immutable value object; the zero value is invalid and fails
// validation - use NewGeoPoint to create instances.
//
// Example:
//
//	berlin, err := kernel.NewGeoPoint(52.52, 13.405)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(berlin) // Output: GeoPoint(52.520000,13.405000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified latitude and longitude.
// Latitude must be within [-90, 90] and longitude within [-180, 180] degrees.
// Returns a validation error if either coordinate is out of bounds.
func NewGeoPoint(lat float64, lon float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := point.setLat(lat); err != nil {
		return GeoPoint{}, err
	}
	if err := point.setLon(lon); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed via NewGeoPoint.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.lat
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.lon
}

// String returns a human-readable representation in the format "GeoPoint(lat,lon)".
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lon)
}

// IsEqual compares two geo points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

// DistanceTo calculates the great-circle distance in kilometers between two points
// using the haversine formula with a mean Earth radius of 6371 km.
//
// The result is a straight-line distance: road networks and the Earth's
// ellipsoidal shape are intentionally ignored. It is accurate at continental
// scale and is never used as a billing distance.
//
// Distance is symmetric: p.DistanceTo(q) == q.DistanceTo(p), and the distance
// from a point to itself is 0.
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(p.lat)
	lat2 := degreesToRadians(other.lat)
	deltaLat := degreesToRadians(other.lat - p.lat)
	deltaLon := degreesToRadians(other.lon - p.lon)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// DistanceBetween computes the great-circle distance between two optional points.
// If either point is absent (nil) or not properly constructed, the result is nil -
// "unknown, not zero". Callers must treat a nil distance as undetermined.
func DistanceBetween(from *GeoPoint, to *GeoPoint) *float64 {
	if from == nil || to == nil {
		return nil
	}

	distance, err := from.DistanceTo(*to)
	if err != nil {
		return nil
	}

	return &distance
}

// RoundKm rounds a distance to two decimal places for storage and display.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// setLat sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}

	p.lat = lat
	return nil
}

// setLon sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLon(lon float64) error {
	if lon < MinLongitude || lon > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lon, MinLongitude, MaxLongitude)
	}

	p.lon = lon
	return nil
}
