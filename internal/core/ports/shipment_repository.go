package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
)

// ShipmentRequestRepository defines the persistence contract for shipment
// request aggregates.
type ShipmentRequestRepository interface {
	// Add persists a new shipment request aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Request) error

	// Update persists changes to an existing shipment request aggregate.
	Update(ctx context.Context, aggregate *shipment.Request) error

	// Get retrieves a shipment request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Request, error)

	// GetFirstAwaitingMatching retrieves the oldest request that is ready for
	// a matching run: status New with an accepted quote. Returns
	// errs.ErrObjectNotFound-wrapped error when nothing is waiting; the
	// matching job treats that as "nothing to do".
	GetFirstAwaitingMatching(ctx context.Context) (*shipment.Request, error)
}
