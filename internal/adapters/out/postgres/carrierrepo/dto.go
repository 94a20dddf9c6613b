// Package carrierrepo provides data transfer objects and mapping functions for carrier persistence.
// This package implements the repository pattern for the carrier domain aggregate, handling
// the conversion between domain entities and database representations.
package carrierrepo

import (
	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CarrierDTO represents the database structure for persisting carrier aggregates.
// Country coverage is stored as native Postgres text arrays; equipment flags and
// fleet capabilities are flattened into boolean columns.
type CarrierDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name              string         `gorm:"type:varchar(255);not null"`
	ContactEmail      string         `gorm:"type:varchar(255)"`
	Lat               *float64       `gorm:"type:double precision"`
	Lon               *float64       `gorm:"type:double precision"`
	ServiceRadiusKm   *float64       `gorm:"type:double precision"`
	IgnoreRadius      bool           `gorm:"type:boolean;not null;default:false"`
	HasTransporter    bool           `gorm:"type:boolean;not null;default:false"`
	HasLKW            bool           `gorm:"type:boolean;not null;default:false"`
	BoxLengthCm       *float64       `gorm:"type:double precision"`
	BoxWidthCm        *float64       `gorm:"type:double precision"`
	BoxHeightCm       *float64       `gorm:"type:double precision"`
	Liftgate          bool           `gorm:"type:boolean;not null;default:false"`
	PalletJack        bool           `gorm:"type:boolean;not null;default:false"`
	GPSTracking       bool           `gorm:"type:boolean;not null;default:false"`
	SideLoading       bool           `gorm:"type:boolean;not null;default:false"`
	Tarp              bool           `gorm:"type:boolean;not null;default:false"`
	PickupCountries   pq.StringArray `gorm:"type:text[]"`
	DeliveryCountries pq.StringArray `gorm:"type:text[]"`
	Active            bool           `gorm:"type:boolean;not null;default:true"`
	Blacklisted       bool           `gorm:"type:boolean;not null;default:false"`
}

// TableName specifies the database table name for carrier entities.
// Overrides GORM's default naming convention to use "carriers" instead of "carrier_dtos".
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier domain aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	var lat, lon *float64
	if loc := aggregate.Location(); loc != nil {
		latVal := loc.Latitude()
		lonVal := loc.Longitude()
		lat = &latVal
		lon = &lonVal
	}

	boxLength, boxWidth, boxHeight := aggregate.CargoBox()
	equipment := aggregate.Equipment()

	return CarrierDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		ContactEmail:      aggregate.ContactEmail(),
		Lat:               lat,
		Lon:               lon,
		ServiceRadiusKm:   aggregate.ServiceRadiusKm(),
		IgnoreRadius:      aggregate.IgnoresRadius(),
		HasTransporter:    aggregate.HasTransporter(),
		HasLKW:            aggregate.HasLKW(),
		BoxLengthCm:       boxLength,
		BoxWidthCm:        boxWidth,
		BoxHeightCm:       boxHeight,
		Liftgate:          equipment.Liftgate,
		PalletJack:        equipment.PalletJack,
		GPSTracking:       equipment.GPSTracking,
		SideLoading:       equipment.SideLoading,
		Tarp:              equipment.Tarp,
		PickupCountries:   pq.StringArray(aggregate.PickupCountries().Values()),
		DeliveryCountries: pq.StringArray(aggregate.DeliveryCountries().Values()),
		Active:            aggregate.IsActive(),
		Blacklisted:       aggregate.IsBlacklisted(),
	}
}

// toDomain converts a database DTO to a carrier domain aggregate.
// Reconstructs the complete aggregate using RestoreCarrier.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	pickupCountries, err := kernel.NewCountrySet(dto.PickupCountries...)
	if err != nil {
		return nil, err
	}
	deliveryCountries, err := kernel.NewCountrySet(dto.DeliveryCountries...)
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, carrier.CarrierSpec{
		Name:            dto.Name,
		ContactEmail:    dto.ContactEmail,
		Location:        location,
		ServiceRadiusKm: dto.ServiceRadiusKm,
		IgnoreRadius:    dto.IgnoreRadius,
		HasTransporter:  dto.HasTransporter,
		HasLKW:          dto.HasLKW,
		BoxLengthCm:     dto.BoxLengthCm,
		BoxWidthCm:      dto.BoxWidthCm,
		BoxHeightCm:     dto.BoxHeightCm,
		Equipment: carrier.Equipment{
			Liftgate:    dto.Liftgate,
			PalletJack:  dto.PalletJack,
			GPSTracking: dto.GPSTracking,
			SideLoading: dto.SideLoading,
			Tarp:        dto.Tarp,
		},
		PickupCountries:   pickupCountries,
		DeliveryCountries: deliveryCountries,
		Active:            dto.Active,
		Blacklisted:       dto.Blacklisted,
	})
}
