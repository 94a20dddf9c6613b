package shipmentrequestrepo

import (
	"context"
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/quote"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRequestRepository implements ShipmentRequestRepository using GORM.
type GormShipmentRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRequestRepository creates a new GORM shipment request repository.
func NewGormShipmentRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRequestRepository {
	return &GormShipmentRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment request to the database.
func (r *GormShipmentRequestRepository) Add(ctx context.Context, aggregate *shipment.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment request to the database.
func (r *GormShipmentRequestRepository) Update(ctx context.Context, aggregate *shipment.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

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

// Get retrieves a shipment request by ID.
func (r *GormShipmentRequestRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstAwaitingMatching retrieves the oldest request ready for a matching
// run: status New with an accepted quote. Requests whose quotes are still
// pending, declined or expired never enter matching.
//
// Example:
//
//	request, err := repo.GetFirstAwaitingMatching(ctx)
//	if err != nil {
//		if errors.Is(err, errs.ErrObjectNotFound) {
//			return nil // nothing to match right now
//		}
//		return err
//	}
func (r *GormShipmentRequestRepository) GetFirstAwaitingMatching(ctx context.Context) (*shipment.Request, error) {
	var dto ShipmentRequestDTO
	if err := r.db.WithContext(ctx).
		Table("shipment_requests").
		Select("shipment_requests.*").
		Joins("JOIN quotes ON quotes.request_id = shipment_requests.id AND quotes.status = ?", int(quote.StatusAccepted)).
		Where("shipment_requests.status = ?", int(shipment.StatusNew)).
		Order("shipment_requests.created_at").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment request awaiting matching", "")
		}
		return nil, err
	}

	return toDomain(dto)
}
