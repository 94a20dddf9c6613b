// Package matchrepo provides data transfer objects and mapping functions for
// carrier request (match record) persistence.
package matchrepo

import (
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"

	"github.com/google/uuid"
)

// CarrierRequestDTO represents the database structure for persisting carrier
// request aggregates. The offered price is stored in integer cents.
type CarrierRequestDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequestID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	CarrierID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	DistanceToPickupKm   *float64   `gorm:"type:double precision"`
	DistanceToDeliveryKm *float64   `gorm:"type:double precision"`
	InRadius             bool       `gorm:"type:boolean;not null;default:false"`
	Status               int        `gorm:"type:smallint;not null;index"`
	OfferedPriceCents    *int64     `gorm:"type:bigint"`
	OfferedDeliveryDate  *time.Time `gorm:""`
	Note                 string     `gorm:"type:text"`
	CreatedAt            time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for carrier request entities.
// Overrides GORM's default naming convention to use "carrier_requests" instead
// of "carrier_request_dtos".
func (CarrierRequestDTO) TableName() string {
	return "carrier_requests"
}

// fromDomain converts a carrier request domain aggregate to its database representation.
func fromDomain(aggregate *match.CarrierRequest) CarrierRequestDTO {
	var offeredPriceCents *int64
	if aggregate.OfferedPrice() != nil {
		cents := aggregate.OfferedPrice().Cents()
		offeredPriceCents = &cents
	}

	return CarrierRequestDTO{
		ID:                   aggregate.ID().Bytes(),
		RequestID:            aggregate.RequestID().Bytes(),
		CarrierID:            aggregate.CarrierID().Bytes(),
		DistanceToPickupKm:   aggregate.DistanceToPickupKm(),
		DistanceToDeliveryKm: aggregate.DistanceToDeliveryKm(),
		InRadius:             aggregate.InRadius(),
		Status:               int(aggregate.Status()),
		OfferedPriceCents:    offeredPriceCents,
		OfferedDeliveryDate:  aggregate.OfferedDeliveryDate(),
		Note:                 aggregate.Note(),
		CreatedAt:            aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a carrier request domain aggregate.
func toDomain(dto CarrierRequestDTO) (*match.CarrierRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	var offeredPrice *kernel.Money
	if dto.OfferedPriceCents != nil {
		price := kernel.MoneyFromCents(*dto.OfferedPriceCents)
		offeredPrice = &price
	}

	return match.RestoreCarrierRequest(
		id,
		requestID,
		carrierID,
		dto.DistanceToPickupKm,
		dto.DistanceToDeliveryKm,
		dto.InRadius,
		match.Status(dto.Status),
		offeredPrice,
		dto.OfferedDeliveryDate,
		dto.Note,
		dto.CreatedAt,
	)
}
