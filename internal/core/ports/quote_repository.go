package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
// A quote and its line items are always written as one atomic unit.
type QuoteRepository interface {
	// Add persists a new quote aggregate with all its line items.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// Update persists changes to an existing quote aggregate. Line items are
	// immutable; only the status moves.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// Get retrieves a quote aggregate by its unique identifier, including
	// its line items in line order.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)
}
