package services

import (
	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
)

// Candidate is one carrier that survived the full matching pipeline for a
// request, together with the distances determined along the way.
//
// DistanceToPickupKm and DistanceToDeliveryKm are rounded to two decimals and
// nil when either endpoint lacked coordinates. InRadius is true for carriers
// that ignore their radius, otherwise the result of the radius comparison,
// and false when no determination could be made.
type Candidate struct {
	Carrier              *carrier.Carrier
	DistanceToPickupKm   *float64
	DistanceToDeliveryKm *float64
	InRadius             bool
}

// CarrierMatcher is a domain service that narrows a carrier pool down to the
// candidates able to serve one shipment request.
//
// Five filters run in a fixed order, each on the survivors of the previous:
//
//  1. Vehicle type - the fleet must cover the required segment.
//  2. Geographic coverage - pickup and delivery country must both be covered;
//     a no-op when the request lacks either country.
//  3. Service radius - the pickup must be within the carrier's radius unless
//     the carrier ignores it; a no-op when the request lacks pickup
//     coordinates.
//  4. Cargo capacity - per-axis box check, only for LKW requests with at
//     least one cargo dimension; missing data on either side passes
//     (permissive).
//  5. Equipment - every required capability must be present (strict).
//
// Missing data never raises: it makes a filter pass permissively or turns it
// into a no-op. Zero survivors is an empty slice, not an error.
type CarrierMatcher struct{}

// NewCarrierMatcher creates a new CarrierMatcher instance.
func NewCarrierMatcher() CarrierMatcher {
	return CarrierMatcher{}
}

// Match runs the filter pipeline for one request over a carrier pool.
//
// Parameters:
//   - request: The shipment request to match (must be constructed)
//   - pool: The carriers to consider; typically all active, non-blacklisted ones
//
// Returns:
//   - []Candidate: The surviving carriers with their recorded distances,
//     empty when nothing matched
//   - error: Only construction errors on the request or a pool entry
//
// The matcher is pure: it mutates neither the request nor the carriers.
func (m CarrierMatcher) Match(request *shipment.Request, pool []*carrier.Carrier) ([]Candidate, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.SupportsVehicle(request.VehicleRequirement()) {
			continue
		}
		if !m.coversRoute(request, c) {
			continue
		}

		distanceToPickup := kernel.DistanceBetween(c.Location(), request.PickupLocation())
		inRadius, pass := m.checkRadius(request, c, distanceToPickup)
		if !pass {
			continue
		}

		if !m.hasCapacity(request, c) {
			continue
		}
		if !c.MeetsEquipment(request.Equipment()) {
			continue
		}

		candidates = append(candidates, Candidate{
			Carrier:              c,
			DistanceToPickupKm:   roundKmPtr(distanceToPickup),
			DistanceToDeliveryKm: roundKmPtr(kernel.DistanceBetween(c.Location(), request.DeliveryLocation())),
			InRadius:             inRadius,
		})
	}

	return candidates, nil
}

// coversRoute applies the geographic coverage filter. The filter is a no-op
// when the request lacks a pickup or a delivery country.
func (m CarrierMatcher) coversRoute(request *shipment.Request, c *carrier.Carrier) bool {
	if request.PickupCountry() == "" || request.DeliveryCountry() == "" {
		return true
	}
	return c.CoversRoute(request.PickupCountry(), request.DeliveryCountry())
}

// checkRadius applies the service radius filter and determines the in-radius
// flag in one pass. It returns (inRadius, pass):
//
//   - The request lacks pickup coordinates: the filter is a no-op; every
//     carrier passes, in-radius is true only for radius-ignoring carriers.
//   - The carrier ignores its radius: passes, in-radius true.
//   - The carrier lacks coordinates or a configured radius: excluded.
//   - Otherwise: passes iff the pickup distance is within the radius.
func (m CarrierMatcher) checkRadius(
	request *shipment.Request,
	c *carrier.Carrier,
	distanceToPickup *float64,
) (bool, bool) {
	if c.IgnoresRadius() {
		return true, true
	}
	if request.PickupLocation() == nil {
		return false, true
	}
	if distanceToPickup == nil || c.ServiceRadiusKm() == nil {
		return false, false
	}

	inRadius := *distanceToPickup <= *c.ServiceRadiusKm()
	return inRadius, inRadius
}

// hasCapacity applies the cargo capacity filter. It only engages for LKW
// requests that specify at least one cargo dimension; everything else is a
// no-op. The per-axis check itself is permissive on missing data.
func (m CarrierMatcher) hasCapacity(request *shipment.Request, c *carrier.Carrier) bool {
	if request.VehicleRequirement() != shipment.VehicleLKW {
		return true
	}

	length, width, height := request.CargoDimensions()
	if length == nil && width == nil && height == nil {
		return true
	}

	return c.HasCapacityFor(length, width, height)
}

func roundKmPtr(km *float64) *float64 {
	if km == nil {
		return nil
	}
	rounded := kernel.RoundKm(*km)
	return &rounded
}
