package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CarrierRepository returns a CarrierRepository bound to the current transaction.
	CarrierRepository() CarrierRepository

	// ShipmentRequestRepository returns a ShipmentRequestRepository bound to the current transaction.
	ShipmentRequestRepository() ShipmentRequestRepository

	// CarrierRequestRepository returns a CarrierRequestRepository bound to the current transaction.
	CarrierRequestRepository() CarrierRequestRepository

	// QuoteRepository returns a QuoteRepository bound to the current transaction.
	QuoteRepository() QuoteRepository

	// PricingRuleRepository returns a PricingRuleRepository bound to the current transaction.
	PricingRuleRepository() PricingRuleRepository
}
