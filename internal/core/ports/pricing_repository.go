package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/pricing"
)

// PricingRuleRepository defines the read contract for pricing rules.
// Rules are configuration data maintained outside the engine; the engine
// only resolves them.
type PricingRuleRepository interface {
	// GetActiveByVehicleType retrieves the active rule for one pricing key.
	// Returns an errs.ErrObjectNotFound-wrapped error when no active rule
	// exists; callers surface that as the recoverable "no pricing rule"
	// condition.
	GetActiveByVehicleType(ctx context.Context, vehicleType string) (*pricing.Rule, error)
}
