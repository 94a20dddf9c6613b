package matchrepo

import (
	"context"
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCarrierRequestRepository implements CarrierRequestRepository using GORM.
type GormCarrierRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierRequestRepository creates a new GORM carrier request repository.
func NewGormCarrierRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRequestRepository {
	return &GormCarrierRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier request to the database.
func (r *GormCarrierRequestRepository) Add(ctx context.Context, aggregate *match.CarrierRequest) error {
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

// Update saves an existing carrier request to the database.
func (r *GormCarrierRequestRepository) Update(ctx context.Context, aggregate *match.CarrierRequest) error {
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

// Get retrieves a carrier request by ID.
func (r *GormCarrierRequestRepository) Get(ctx context.Context, id kernel.UUID) (*match.CarrierRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllNewForRequest retrieves the New-status match records of one shipment
// request, locked FOR UPDATE. The lock makes concurrent dispatch runs queue on
// the same rows instead of sending duplicate invitations.
func (r *GormCarrierRequestRepository) GetAllNewForRequest(
	ctx context.Context,
	requestID kernel.UUID,
) ([]*match.CarrierRequest, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CarrierRequestDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ? AND status = ?", requestID.Bytes(), int(match.StatusNew)).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllOfferedForRequest retrieves the Offered-status match records of one
// shipment request. The accept flow uses this to reject the siblings of the
// winning offer.
func (r *GormCarrierRequestRepository) GetAllOfferedForRequest(
	ctx context.Context,
	requestID kernel.UUID,
) ([]*match.CarrierRequest, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CarrierRequestDTO
	if err := r.db.WithContext(ctx).
		Where("request_id = ? AND status = ?", requestID.Bytes(), int(match.StatusOffered)).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetRequestIDsWithNewMatches retrieves the distinct shipment request ids that
// currently have at least one New-status match record awaiting dispatch.
func (r *GormCarrierRequestRepository) GetRequestIDsWithNewMatches(ctx context.Context) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&CarrierRequestDTO{}).
		Distinct("request_id").
		Where("status = ?", int(match.StatusNew)).
		Pluck("request_id", &rawIDs).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func toDomainSlice(dtos []CarrierRequestDTO) ([]*match.CarrierRequest, error) {
	records := make([]*match.CarrierRequest, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
