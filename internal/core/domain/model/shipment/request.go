package shipment

import (
	"errors"
	"strings"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request was not created via
// NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

// RequestSpec carries the externally supplied attributes of a shipment
// request. Optional fields are pointers or empty strings; the constructor
// validates whatever is present.
type RequestSpec struct {
	Cargo              Cargo
	VehicleRequirement VehicleRequirement
	Equipment          EquipmentRequirements

	PickupLocation   *kernel.GeoPoint
	DeliveryLocation *kernel.GeoPoint
	PickupCountry    string
	DeliveryCountry  string

	// DistanceKm is the authoritative billing distance supplied upstream.
	// It is decoupled from the matching pipeline's own haversine distances.
	DistanceKm *float64

	PickupDate time.Time
}

// Request is the shipment request aggregate. The matching and pricing engine
// reads it and advances its lifecycle status; cargo, route and requirements
// are immutable after construction.
type Request struct {
	id kernel.UUID

	cargo              Cargo
	vehicleRequirement VehicleRequirement
	equipment          EquipmentRequirements

	pickupLocation   *kernel.GeoPoint
	deliveryLocation *kernel.GeoPoint
	pickupCountry    string
	deliveryCountry  string

	distanceKm *float64
	pickupDate time.Time
	createdAt  time.Time

	status           Status
	matchedCarrierID *kernel.UUID

	isConstructed bool
}

// NewRequest creates a shipment request in New status.
func NewRequest(id kernel.UUID, spec RequestSpec, now time.Time) (*Request, error) {
	request := &Request{
		status:        StatusNew,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		request.setID(id),
		request.setSpec(spec),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// RestoreRequest reconstructs a request from persistence with its stored
// status, matched carrier and creation time.
func RestoreRequest(
	id kernel.UUID,
	spec RequestSpec,
	status Status,
	matchedCarrierID *kernel.UUID,
	createdAt time.Time,
) (*Request, error) {
	request := &Request{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		request.setID(id),
		request.setSpec(spec),
		status.Validate(),
		status.ValidateCanHaveCarrier(matchedCarrierID != nil),
	); err != nil {
		return nil, err
	}

	if matchedCarrierID != nil {
		if err := matchedCarrierID.Validate(); err != nil {
			return nil, err
		}
	}

	request.status = status
	request.matchedCarrierID = matchedCarrierID
	return request, nil
}

// Validate checks if the Request was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by identity.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// Cargo returns the mode-specific cargo descriptor.
func (r *Request) Cargo() Cargo {
	return r.cargo
}

// VehicleRequirement returns the required fleet segment.
func (r *Request) VehicleRequirement() VehicleRequirement {
	return r.vehicleRequirement
}

// Equipment returns the equipment requirement flags.
func (r *Request) Equipment() EquipmentRequirements {
	return r.equipment
}

// PickupLocation returns the geocoded pickup coordinates, nil when unknown.
func (r *Request) PickupLocation() *kernel.GeoPoint {
	return r.pickupLocation
}

// DeliveryLocation returns the geocoded delivery coordinates, nil when unknown.
func (r *Request) DeliveryLocation() *kernel.GeoPoint {
	return r.deliveryLocation
}

// PickupCountry returns the ISO pickup country code, empty when unset.
func (r *Request) PickupCountry() string {
	return r.pickupCountry
}

// DeliveryCountry returns the ISO delivery country code, empty when unset.
func (r *Request) DeliveryCountry() string {
	return r.deliveryCountry
}

// DistanceKm returns the billing distance supplied upstream, nil when unknown.
func (r *Request) DistanceKm() *float64 {
	return r.distanceKm
}

// PickupDate returns the requested pickup date.
func (r *Request) PickupDate() time.Time {
	return r.pickupDate
}

// CreatedAt returns the creation time of the request.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// Status returns the current lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// MatchedCarrierID returns the carrier selected for this request, nil until
// an offer was accepted.
func (r *Request) MatchedCarrierID() *kernel.UUID {
	return r.matchedCarrierID
}

// CargoDimensions returns the per-axis cargo extent in centimeters, as far as
// the cargo variant can provide one. Used by the capacity filter.
func (r *Request) CargoDimensions() (lengthCm, widthCm, heightCm *float64) {
	return r.cargo.Dimensions()
}

// PricingKey returns the key used to resolve the applicable pricing rule:
// the booked vehicle type for vehicle bookings, otherwise the vehicle
// requirement name.
func (r *Request) PricingKey() string {
	if booking, ok := r.cargo.(VehicleBookingCargo); ok {
		return booking.VehicleType()
	}
	return r.vehicleRequirement.String()
}

// StartMatching transitions the request into Matching at the start of a
// matching run. Only valid from New.
func (r *Request) StartMatching() error {
	newStatus, err := r.status.StartMatching()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// ResetToNew reverts a Matching request back to New when the run produced
// zero candidates. This is the explicit no-op recovery, not an error state.
func (r *Request) ResetToNew() error {
	newStatus, err := r.status.ResetToNew()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// MarkMatched records the accepted carrier and transitions to Matched.
// Only valid from Matching.
func (r *Request) MarkMatched(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.MarkMatched()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.matchedCarrierID = &carrierID
	return nil
}

// StartTransit transitions the request into InTransit.
func (r *Request) StartTransit() error {
	newStatus, err := r.status.StartTransit()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// CompleteDelivery transitions the request into Delivered.
func (r *Request) CompleteDelivery() error {
	newStatus, err := r.status.CompleteDelivery()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Cancel withdraws the request. Valid from any non-terminal status.
func (r *Request) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setSpec(spec RequestSpec) error {
	if spec.Cargo == nil {
		return errs.NewValueIsRequiredError("cargo")
	}
	if err := spec.VehicleRequirement.Validate(); err != nil {
		return err
	}
	if spec.PickupLocation != nil {
		if err := spec.PickupLocation.Validate(); err != nil {
			return err
		}
	}
	if spec.DeliveryLocation != nil {
		if err := spec.DeliveryLocation.Validate(); err != nil {
			return err
		}
	}
	if err := errors.Join(
		validateOptionalCountry("pickupCountry", spec.PickupCountry),
		validateOptionalCountry("deliveryCountry", spec.DeliveryCountry),
	); err != nil {
		return err
	}
	if spec.DistanceKm != nil && *spec.DistanceKm < 0 {
		return errs.NewValueIsInvalidError("distanceKm")
	}
	if spec.PickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}

	r.cargo = spec.Cargo
	r.vehicleRequirement = spec.VehicleRequirement
	r.equipment = spec.Equipment
	r.pickupLocation = spec.PickupLocation
	r.deliveryLocation = spec.DeliveryLocation
	r.pickupCountry = strings.ToUpper(strings.TrimSpace(spec.PickupCountry))
	r.deliveryCountry = strings.ToUpper(strings.TrimSpace(spec.DeliveryCountry))
	r.distanceKm = spec.DistanceKm
	r.pickupDate = spec.PickupDate
	return nil
}

func validateOptionalCountry(param string, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	if len(code) != 2 {
		return errs.NewValueIsInvalidError(param)
	}
	return nil
}
