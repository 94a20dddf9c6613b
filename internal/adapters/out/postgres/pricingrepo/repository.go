package pricingrepo

import (
	"context"
	"errors"

	"freightmatch/internal/core/domain/model/pricing"
	"freightmatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingRuleRepository implements PricingRuleRepository using GORM.
type GormPricingRuleRepository struct {
	db *gorm.DB
}

// NewGormPricingRuleRepository creates a new GORM pricing rule repository.
func NewGormPricingRuleRepository(db *gorm.DB) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{db: db}
}

// GetActiveByVehicleType retrieves the active pricing rule for one pricing key.
// Returns an ObjectNotFoundError when no active rule covers the vehicle type;
// callers surface that as the recoverable "no pricing rule" condition.
func (r *GormPricingRuleRepository) GetActiveByVehicleType(
	ctx context.Context,
	vehicleType string,
) (*pricing.Rule, error) {
	var dto PricingRuleDTO
	if err := r.db.WithContext(ctx).
		Where("vehicle_type = ? AND active = ?", vehicleType, true).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing rule", vehicleType)
		}
		return nil, err
	}

	return toDomain(dto)
}
