package pricing

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"
)

// ErrRuleIsNotConstructed is returned when a Rule was not created via
// NewRule or RestoreRule.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule or RestoreRule constructor")

// Rule is the pricing configuration for one vehicle type: the per-kilometer
// rate, the price floor and the surcharge percentages.
type Rule struct {
	id          kernel.UUID
	vehicleType string

	ratePerKm    float64
	minimumPrice kernel.Money

	weekendSurchargePercent float64
	expressSurchargePercent float64

	active bool

	isConstructed bool
}

// NewRule creates a pricing rule.
func NewRule(
	id kernel.UUID,
	vehicleType string,
	ratePerKm float64,
	minimumPrice kernel.Money,
	weekendSurchargePercent float64,
	expressSurchargePercent float64,
	active bool,
) (*Rule, error) {
	rule := &Rule{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		rule.setID(id),
		rule.setVehicleType(vehicleType),
		rule.setRates(ratePerKm, minimumPrice, weekendSurchargePercent, expressSurchargePercent),
	); err != nil {
		return nil, err
	}

	return rule, nil
}

// RestoreRule reconstructs a pricing rule from persistence.
func RestoreRule(
	id kernel.UUID,
	vehicleType string,
	ratePerKm float64,
	minimumPrice kernel.Money,
	weekendSurchargePercent float64,
	expressSurchargePercent float64,
	active bool,
) (*Rule, error) {
	return NewRule(id, vehicleType, ratePerKm, minimumPrice,
		weekendSurchargePercent, expressSurchargePercent, active)
}

// Validate checks if the Rule was properly constructed.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// IsEqual compares two rules by identity.
func (r *Rule) IsEqual(other *Rule) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rule identifier.
func (r *Rule) ID() kernel.UUID { return r.id }

// VehicleType returns the pricing key this rule applies to.
func (r *Rule) VehicleType() string { return r.vehicleType }

// RatePerKm returns the per-kilometer rate in currency units.
func (r *Rule) RatePerKm() float64 { return r.ratePerKm }

// MinimumPrice returns the price floor for the base component.
func (r *Rule) MinimumPrice() kernel.Money { return r.minimumPrice }

// WeekendSurchargePercent returns the percentage added for weekend pickups.
func (r *Rule) WeekendSurchargePercent() float64 { return r.weekendSurchargePercent }

// ExpressSurchargePercent returns the percentage added for short-notice pickups.
func (r *Rule) ExpressSurchargePercent() float64 { return r.expressSurchargePercent }

// IsActive reports whether the rule is currently in force.
func (r *Rule) IsActive() bool { return r.active }

func (r *Rule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rule) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	r.vehicleType = vehicleType
	return nil
}

func (r *Rule) setRates(
	ratePerKm float64,
	minimumPrice kernel.Money,
	weekendSurchargePercent float64,
	expressSurchargePercent float64,
) error {
	if ratePerKm < 0 {
		return errs.NewValueIsInvalidError("ratePerKm")
	}
	if minimumPrice.IsNegative() {
		return errs.NewValueIsInvalidError("minimumPrice")
	}
	if weekendSurchargePercent < 0 {
		return errs.NewValueIsInvalidError("weekendSurchargePercent")
	}
	if expressSurchargePercent < 0 {
		return errs.NewValueIsInvalidError("expressSurchargePercent")
	}

	r.ratePerKm = ratePerKm
	r.minimumPrice = minimumPrice
	r.weekendSurchargePercent = weekendSurchargePercent
	r.expressSurchargePercent = expressSurchargePercent
	return nil
}
