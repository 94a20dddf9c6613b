package match

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
)

// ErrCarrierRequestIsNotConstructed is returned when a CarrierRequest was not
// created via NewCarrierRequest or RestoreCarrierRequest.
var ErrCarrierRequestIsNotConstructed = errors.New(
	"CarrierRequest must be created via NewCarrierRequest or RestoreCarrierRequest constructor")

// Offer carries the terms a carrier submitted in response to an invitation.
type Offer struct {
	Price        kernel.Money
	DeliveryDate *time.Time
	Note         string
}

// CarrierRequest links a shipment request to one matched carrier and tracks
// the invitation/offer lifecycle between them. The matching run records the
// candidate distances at creation time; they never change afterwards.
type CarrierRequest struct {
	id        kernel.UUID
	requestID kernel.UUID
	carrierID kernel.UUID

	distanceToPickupKm   *float64
	distanceToDeliveryKm *float64
	inRadius             bool

	status Status

	offeredPrice        *kernel.Money
	offeredDeliveryDate *time.Time
	note                string

	createdAt time.Time

	isConstructed bool
}

// NewCarrierRequest records a fresh match in New status.
//
// distanceToPickupKm and distanceToDeliveryKm come from the matching
// pipeline; either may be nil when an endpoint lacks coordinates.
func NewCarrierRequest(
	id kernel.UUID,
	requestID kernel.UUID,
	carrierID kernel.UUID,
	distanceToPickupKm *float64,
	distanceToDeliveryKm *float64,
	inRadius bool,
	now time.Time,
) (*CarrierRequest, error) {
	cr := &CarrierRequest{
		distanceToPickupKm:   distanceToPickupKm,
		distanceToDeliveryKm: distanceToDeliveryKm,
		inRadius:             inRadius,
		status:               StatusNew,
		createdAt:            now,
		isConstructed:        true,
	}

	if err := errors.Join(
		cr.setID(id),
		cr.setRequestID(requestID),
		cr.setCarrierID(carrierID),
		validateOptionalDistance("distanceToPickupKm", distanceToPickupKm),
		validateOptionalDistance("distanceToDeliveryKm", distanceToDeliveryKm),
	); err != nil {
		return nil, err
	}

	return cr, nil
}

// RestoreCarrierRequest reconstructs a carrier request from persistence.
func RestoreCarrierRequest(
	id kernel.UUID,
	requestID kernel.UUID,
	carrierID kernel.UUID,
	distanceToPickupKm *float64,
	distanceToDeliveryKm *float64,
	inRadius bool,
	status Status,
	offeredPrice *kernel.Money,
	offeredDeliveryDate *time.Time,
	note string,
	createdAt time.Time,
) (*CarrierRequest, error) {
	cr := &CarrierRequest{
		distanceToPickupKm:   distanceToPickupKm,
		distanceToDeliveryKm: distanceToDeliveryKm,
		inRadius:             inRadius,
		offeredPrice:         offeredPrice,
		offeredDeliveryDate:  offeredDeliveryDate,
		note:                 note,
		createdAt:            createdAt,
		isConstructed:        true,
	}

	if err := errors.Join(
		cr.setID(id),
		cr.setRequestID(requestID),
		cr.setCarrierID(carrierID),
		status.Validate(),
		validateOptionalDistance("distanceToPickupKm", distanceToPickupKm),
		validateOptionalDistance("distanceToDeliveryKm", distanceToDeliveryKm),
	); err != nil {
		return nil, err
	}

	cr.status = status
	return cr, nil
}

// Validate checks if the CarrierRequest was properly constructed.
func (cr *CarrierRequest) Validate() error {
	if cr == nil || !cr.isConstructed {
		return ErrCarrierRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two carrier requests by identity.
func (cr *CarrierRequest) IsEqual(other *CarrierRequest) bool {
	return other != nil && cr.id.IsEqual(other.id)
}

// ID returns the carrier request identifier.
func (cr *CarrierRequest) ID() kernel.UUID { return cr.id }

// RequestID returns the parent shipment request identifier.
func (cr *CarrierRequest) RequestID() kernel.UUID { return cr.requestID }

// CarrierID returns the matched carrier identifier.
func (cr *CarrierRequest) CarrierID() kernel.UUID { return cr.carrierID }

// DistanceToPickupKm returns the carrier-to-pickup distance recorded at match
// time, nil when either endpoint lacked coordinates.
func (cr *CarrierRequest) DistanceToPickupKm() *float64 { return cr.distanceToPickupKm }

// DistanceToDeliveryKm returns the carrier-to-delivery distance recorded at
// match time, nil when either endpoint lacked coordinates.
func (cr *CarrierRequest) DistanceToDeliveryKm() *float64 { return cr.distanceToDeliveryKm }

// InRadius reports whether the pickup was determined to be within the
// carrier's reach: true for carriers that ignore their radius, otherwise the
// recorded radius comparison, false when it could not be determined.
func (cr *CarrierRequest) InRadius() bool { return cr.inRadius }

// Status returns the current invitation/offer status.
func (cr *CarrierRequest) Status() Status { return cr.status }

// OfferedPrice returns the submitted offer price, nil before an offer.
func (cr *CarrierRequest) OfferedPrice() *kernel.Money { return cr.offeredPrice }

// OfferedDeliveryDate returns the delivery date the carrier committed to,
// nil before an offer or when the carrier did not name one.
func (cr *CarrierRequest) OfferedDeliveryDate() *time.Time { return cr.offeredDeliveryDate }

// Note returns the free-text note attached to the offer, empty before one.
func (cr *CarrierRequest) Note() string { return cr.note }

// CreatedAt returns the creation time of the match record.
func (cr *CarrierRequest) CreatedAt() time.Time { return cr.createdAt }

// MarkSent records that the invitation was dispatched. Only valid from New.
func (cr *CarrierRequest) MarkSent() error {
	newStatus, err := cr.status.MarkSent()
	if err != nil {
		return err
	}
	cr.status = newStatus
	return nil
}

// SubmitOffer records the carrier's offer and transitions Sent -> Offered.
// A negative price is rejected.
func (cr *CarrierRequest) SubmitOffer(offer Offer) error {
	if offer.Price.IsNegative() {
		return errs.NewValueIsInvalidError("offer price")
	}

	newStatus, err := cr.status.SubmitOffer()
	if err != nil {
		return err
	}

	cr.status = newStatus
	price := offer.Price
	cr.offeredPrice = &price
	cr.offeredDeliveryDate = offer.DeliveryDate
	cr.note = offer.Note
	return nil
}

// Win marks this offer as accepted. Only valid from Offered.
func (cr *CarrierRequest) Win() error {
	newStatus, err := cr.status.Win()
	if err != nil {
		return err
	}
	cr.status = newStatus
	return nil
}

// Reject marks this offer as rejected. Only valid from Offered.
func (cr *CarrierRequest) Reject() error {
	newStatus, err := cr.status.Reject()
	if err != nil {
		return err
	}
	cr.status = newStatus
	return nil
}

func (cr *CarrierRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	cr.id = id
	return nil
}

func (cr *CarrierRequest) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("requestId", err)
	}
	cr.requestID = requestID
	return nil
}

func (cr *CarrierRequest) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrierId", err)
	}
	cr.carrierID = carrierID
	return nil
}

func validateOptionalDistance(param string, km *float64) error {
	if km != nil && *km < 0 {
		return errs.NewValueIsInvalidError(param)
	}
	return nil
}
