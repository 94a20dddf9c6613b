package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
)

// CarrierRequestRepository defines the persistence contract for carrier
// request (match record) aggregates.
type CarrierRequestRepository interface {
	// Add persists a new carrier request aggregate to storage.
	Add(ctx context.Context, aggregate *match.CarrierRequest) error

	// Update persists changes to an existing carrier request aggregate.
	Update(ctx context.Context, aggregate *match.CarrierRequest) error

	// Get retrieves a carrier request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*match.CarrierRequest, error)

	// GetAllNewForRequest retrieves the New-status match records of one
	// shipment request, locked for update within the current transaction so
	// concurrent dispatch runs cannot claim the same records.
	GetAllNewForRequest(ctx context.Context, requestID kernel.UUID) ([]*match.CarrierRequest, error)

	// GetAllOfferedForRequest retrieves the Offered-status match records of
	// one shipment request. Used by the accept flow to reject the siblings of
	// the winning offer.
	GetAllOfferedForRequest(ctx context.Context, requestID kernel.UUID) ([]*match.CarrierRequest, error)

	// GetRequestIDsWithNewMatches retrieves the distinct shipment request ids
	// that currently have at least one New-status match record. The
	// invitation job re-queries through this instead of trusting any
	// in-memory list from the matching run.
	GetRequestIDsWithNewMatches(ctx context.Context) ([]kernel.UUID, error)
}
