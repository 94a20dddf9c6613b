// Package pricingrepo provides data transfer objects and mapping functions for
// pricing rule persistence. Rules are read-mostly configuration; the engine
// resolves them, operators maintain them.
package pricingrepo

import (
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// PricingRuleDTO represents the database structure for persisting pricing rules.
type PricingRuleDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleType             string    `gorm:"type:varchar(64);not null;index"`
	RatePerKm               float64   `gorm:"type:double precision;not null"`
	MinimumPriceCents       int64     `gorm:"type:bigint;not null"`
	WeekendSurchargePercent float64   `gorm:"type:double precision;not null"`
	ExpressSurchargePercent float64   `gorm:"type:double precision;not null"`
	Active                  bool      `gorm:"type:boolean;not null;default:true"`
}

// TableName specifies the database table name for pricing rule entities.
// Overrides GORM's default naming convention to use "pricing_rules" instead
// of "pricing_rule_dtos".
func (PricingRuleDTO) TableName() string {
	return "pricing_rules"
}

// FromDomain converts a pricing rule domain object to its database representation.
// Exported for seeding rules in composition and test setup.
func FromDomain(rule *pricing.Rule) PricingRuleDTO {
	return PricingRuleDTO{
		ID:                      rule.ID().Bytes(),
		VehicleType:             rule.VehicleType(),
		RatePerKm:               rule.RatePerKm(),
		MinimumPriceCents:       rule.MinimumPrice().Cents(),
		WeekendSurchargePercent: rule.WeekendSurchargePercent(),
		ExpressSurchargePercent: rule.ExpressSurchargePercent(),
		Active:                  rule.IsActive(),
	}
}

// toDomain converts a database DTO to a pricing rule domain object.
func toDomain(dto PricingRuleDTO) (*pricing.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return pricing.RestoreRule(
		id,
		dto.VehicleType,
		dto.RatePerKm,
		kernel.MoneyFromCents(dto.MinimumPriceCents),
		dto.WeekendSurchargePercent,
		dto.ExpressSurchargePercent,
		dto.Active,
	)
}
