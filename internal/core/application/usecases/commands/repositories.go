// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freightmatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest slice it needs, so tests and wiring
// only have to provide the repositories a command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// ShipmentRequestRepoFactory provides access to the shipment request repository within a transaction.
	ShipmentRequestRepoFactory interface {
		ShipmentRequestRepository() ports.ShipmentRequestRepository
	}

	// CarrierRequestRepoFactory provides access to the carrier request repository within a transaction.
	CarrierRequestRepoFactory interface {
		CarrierRequestRepository() ports.CarrierRequestRepository
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// PricingRuleRepoFactory provides access to the pricing rule repository within a transaction.
	PricingRuleRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	// ShipmentRequestUoW manages transactions for request-only operations.
	ShipmentRequestUoW interface {
		TxManager
		ShipmentRequestRepoFactory
	}

	// ShipmentRequestUoWFactory creates new request unit of work instances.
	ShipmentRequestUoWFactory interface {
		Create() ShipmentRequestUoW
	}

	// CarrierUoW manages transactions for carrier-only operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates new carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// QuoteUoW manages transactions for quote decision operations.
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// CalculateQuoteUoW spans the repositories involved in pricing one request.
	CalculateQuoteUoW interface {
		TxManager
		ShipmentRequestRepoFactory
		PricingRuleRepoFactory
		QuoteRepoFactory
	}

	// CalculateQuoteUoWFactory creates new quote calculation unit of work instances.
	CalculateQuoteUoWFactory interface {
		Create() CalculateQuoteUoW
	}

	// MatchingUoW spans the repositories involved in one matching run.
	MatchingUoW interface {
		TxManager
		ShipmentRequestRepoFactory
		CarrierRepoFactory
		CarrierRequestRepoFactory
	}

	// MatchingUoWFactory creates new matching unit of work instances.
	MatchingUoWFactory interface {
		Create() MatchingUoW
	}

	// DispatchUoW spans the repositories involved in claiming and sending
	// invitations for one request.
	DispatchUoW interface {
		TxManager
		ShipmentRequestRepoFactory
		CarrierRepoFactory
		CarrierRequestRepoFactory
	}

	// DispatchUoWFactory creates new invitation dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// OfferUoW manages transactions for offer submission.
	OfferUoW interface {
		TxManager
		CarrierRequestRepoFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// AcceptOfferUoW spans the repositories involved in the three-part offer
	// acceptance: winner, siblings and the parent request.
	AcceptOfferUoW interface {
		TxManager
		CarrierRequestRepoFactory
		ShipmentRequestRepoFactory
	}

	// AcceptOfferUoWFactory creates new offer acceptance unit of work instances.
	AcceptOfferUoWFactory interface {
		Create() AcceptOfferUoW
	}
)
