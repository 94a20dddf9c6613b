// Package queries contains read-only operations returning view models.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and bypass the aggregate repositories.
package queries

import (
	"errors"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrGetUncompletedRequestsQueryIsNotConstructed = errors.New(
	"GetUncompletedRequestsQuery must be created via NewGetUncompletedRequestsQuery constructor",
)

// GetUncompletedRequestsQuery retrieves all shipment requests that are still
// in flight: everything except Delivered and Cancelled.
//
// Example:
//
//	query := NewGetUncompletedRequestsQuery()
//	handler := NewGetUncompletedRequestsQueryHandler(db)
//
//	requests, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open requests: %w", err)
//	}
//	fmt.Printf("%d requests in flight\n", len(requests))
type GetUncompletedRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedRequestsQuery creates a query to retrieve open requests.
func NewGetUncompletedRequestsQuery() GetUncompletedRequestsQuery {
	return GetUncompletedRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedRequestsQueryIsNotConstructed)
}

// GetUncompletedRequestsQueryResponse is one open request in the listing.
type GetUncompletedRequestsQueryResponse struct {
	ID              kernel.UUID
	Status          string
	PickupCountry   string
	DeliveryCountry string
	PickupDate      time.Time
	CreatedAt       time.Time
}
