package queries

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

var ErrGetMatchesForRequestQueryIsNotConstructed = errors.New(
	"GetMatchesForRequestQuery must be created via NewGetMatchesForRequestQuery constructor",
)

// GetMatchesForRequestQuery retrieves all carrier match records for one
// shipment request, including offer details where carriers responded.
//
// Example:
//
//	query, err := NewGetMatchesForRequestQuery(requestID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	matches, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get matches: %w", err)
//	}
//
//	for _, m := range matches {
//	    fmt.Printf("%s: %s\n", m.CarrierName, m.Status)
//	}
type GetMatchesForRequestQuery struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard

	requestID kernel.UUID
}

// NewGetMatchesForRequestQuery creates a query for the match records of
// a single shipment request. Returns an error when the request ID is invalid.
func NewGetMatchesForRequestQuery(requestID kernel.UUID) (GetMatchesForRequestQuery, error) {
	query := GetMatchesForRequestQuery{guard: guard.NewConstructorGuard()}

	if err := query.setRequestID(requestID); err != nil {
		return GetMatchesForRequestQuery{}, err
	}

	return query, nil
}

// RequestID returns the shipment request identifier the query is scoped to.
func (q GetMatchesForRequestQuery) RequestID() kernel.UUID {
	return q.requestID
}

// Validate ensures the query was created through the constructor.
func (q GetMatchesForRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetMatchesForRequestQueryIsNotConstructed)
}

func (q *GetMatchesForRequestQuery) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("requestId", err)
	}
	q.requestID = requestID

	return nil
}

// GetMatchesForRequestQueryResponse is one carrier match record in the read
// model. Offer fields are nil until the carrier submits an offer.
type GetMatchesForRequestQueryResponse struct {
	ID                   kernel.UUID
	CarrierID            kernel.UUID
	CarrierName          string
	DistanceToPickupKm   *float64
	DistanceToDeliveryKm *float64
	InRadius             bool
	Status               string
	OfferedPriceCents    *int64
	OfferedDeliveryDate  *time.Time
	Note                 string
}
