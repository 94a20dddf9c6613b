// Package ports defines the persistence and notification contracts between
// the domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetAllMatchable retrieves every carrier eligible to enter a matching
	// run: active and not blacklisted. The filter pipeline narrows the pool
	// further; this query only enforces the hard exclusions.
	GetAllMatchable(ctx context.Context) ([]*carrier.Carrier, error)
}
