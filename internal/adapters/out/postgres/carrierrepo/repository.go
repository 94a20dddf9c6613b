package carrierrepo

import (
	"context"
	"errors"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier to the database.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing carrier to the database.
func (r *GormCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a carrier by ID.
func (r *GormCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllMatchable retrieves all carriers eligible to enter a matching run.
// A carrier is matchable when it is active and not blacklisted; the filter
// pipeline narrows the pool further against each request.
//
// Example:
//
//	pool, err := repo.GetAllMatchable(ctx)
//	if err != nil {
//		return fmt.Errorf("failed to get matchable carriers: %w", err)
//	}
//	for _, c := range pool {
//		fmt.Printf("Candidate carrier: %s\n", c.Name())
//	}
func (r *GormCarrierRepository) GetAllMatchable(ctx context.Context) ([]*carrier.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.db.WithContext(ctx).
		Where("active = ? AND blacklisted = ?", true, false).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	carriers := make([]*carrier.Carrier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}

	return carriers, nil
}
