// Package shipmentrequestrepo provides data transfer objects and mapping functions
// for shipment request persistence. The three cargo variants are flattened into one
// row: the packages variant serializes its list to a jsonb column, the other two
// variants use scalar columns.
package shipmentrequestrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentRequestDTO represents the database structure for persisting shipment
// request aggregates.
type ShipmentRequestDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Status             int        `gorm:"type:smallint;not null;index"`
	ShippingMode       int        `gorm:"type:smallint;not null"`
	Packages           []byte     `gorm:"type:jsonb"`
	LoadingMeters      *float64   `gorm:"type:double precision"`
	CargoHeightCm      *float64   `gorm:"type:double precision"`
	CargoWeightKg      *float64   `gorm:"type:double precision"`
	BookedVehicleType  *string    `gorm:"type:varchar(64)"`
	VehicleRequirement int        `gorm:"type:smallint;not null"`
	Liftgate           bool       `gorm:"type:boolean;not null;default:false"`
	PalletJack         bool       `gorm:"type:boolean;not null;default:false"`
	GPSTracking        bool       `gorm:"type:boolean;not null;default:false"`
	SideLoading        bool       `gorm:"type:boolean;not null;default:false"`
	Tarp               bool       `gorm:"type:boolean;not null;default:false"`
	PickupLat          *float64   `gorm:"type:double precision"`
	PickupLon          *float64   `gorm:"type:double precision"`
	DeliveryLat        *float64   `gorm:"type:double precision"`
	DeliveryLon        *float64   `gorm:"type:double precision"`
	PickupCountry      string     `gorm:"type:varchar(2)"`
	DeliveryCountry    string     `gorm:"type:varchar(2)"`
	DistanceKm         *float64   `gorm:"type:double precision"`
	PickupDate         time.Time  `gorm:"not null"`
	MatchedCarrierID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt          time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for shipment request entities.
// Overrides GORM's default naming convention to use "shipment_requests" instead
// of "shipment_request_dtos".
func (ShipmentRequestDTO) TableName() string {
	return "shipment_requests"
}

// packageDTO is the jsonb element for one package of a packages-mode cargo.
type packageDTO struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

// fromDomain converts a shipment request domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Request) (ShipmentRequestDTO, error) {
	dto := ShipmentRequestDTO{
		ID:                 aggregate.ID().Bytes(),
		Status:             int(aggregate.Status()),
		ShippingMode:       int(aggregate.Cargo().Mode()),
		VehicleRequirement: int(aggregate.VehicleRequirement()),
		PickupCountry:      aggregate.PickupCountry(),
		DeliveryCountry:    aggregate.DeliveryCountry(),
		DistanceKm:         aggregate.DistanceKm(),
		PickupDate:         aggregate.PickupDate(),
		CreatedAt:          aggregate.CreatedAt(),
	}

	equipment := aggregate.Equipment()
	dto.Liftgate = equipment.Liftgate
	dto.PalletJack = equipment.PalletJack
	dto.GPSTracking = equipment.GPSTracking
	dto.SideLoading = equipment.SideLoading
	dto.Tarp = equipment.Tarp

	if loc := aggregate.PickupLocation(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		dto.PickupLat = &lat
		dto.PickupLon = &lon
	}
	if loc := aggregate.DeliveryLocation(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		dto.DeliveryLat = &lat
		dto.DeliveryLon = &lon
	}

	if aggregate.MatchedCarrierID() != nil {
		raw := aggregate.MatchedCarrierID().Bytes()
		dto.MatchedCarrierID = &raw
	}

	switch cargo := aggregate.Cargo().(type) {
	case shipment.PackagesCargo:
		packages := make([]packageDTO, 0, len(cargo.Packages()))
		for _, p := range cargo.Packages() {
			packages = append(packages, packageDTO{
				LengthCm: p.LengthCm,
				WidthCm:  p.WidthCm,
				HeightCm: p.HeightCm,
				WeightKg: p.WeightKg,
			})
		}
		raw, err := json.Marshal(packages)
		if err != nil {
			return ShipmentRequestDTO{}, err
		}
		dto.Packages = raw
	case shipment.LoadingMetersCargo:
		meters := cargo.LoadingMeters()
		dto.LoadingMeters = &meters
		dto.CargoHeightCm = cargo.HeightCm()
		dto.CargoWeightKg = cargo.WeightKg()
	case shipment.VehicleBookingCargo:
		vehicleType := cargo.VehicleType()
		dto.BookedVehicleType = &vehicleType
	default:
		return ShipmentRequestDTO{}, fmt.Errorf("unsupported shipping mode: %d", aggregate.Cargo().Mode())
	}

	return dto, nil
}

// toDomain converts a database DTO to a shipment request domain aggregate.
// Reconstructs the complete aggregate including cargo using RestoreRequest.
func toDomain(dto ShipmentRequestDTO) (*shipment.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cargo, err := cargoToDomain(dto)
	if err != nil {
		return nil, err
	}

	spec := shipment.RequestSpec{
		Cargo:              cargo,
		VehicleRequirement: shipment.VehicleRequirement(dto.VehicleRequirement),
		Equipment: shipment.EquipmentRequirements{
			Liftgate:    dto.Liftgate,
			PalletJack:  dto.PalletJack,
			GPSTracking: dto.GPSTracking,
			SideLoading: dto.SideLoading,
			Tarp:        dto.Tarp,
		},
		PickupCountry:   dto.PickupCountry,
		DeliveryCountry: dto.DeliveryCountry,
		DistanceKm:      dto.DistanceKm,
		PickupDate:      dto.PickupDate,
	}

	if dto.PickupLat != nil && dto.PickupLon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.PickupLat, *dto.PickupLon)
		if pointErr != nil {
			return nil, pointErr
		}
		spec.PickupLocation = &point
	}
	if dto.DeliveryLat != nil && dto.DeliveryLon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.DeliveryLat, *dto.DeliveryLon)
		if pointErr != nil {
			return nil, pointErr
		}
		spec.DeliveryLocation = &point
	}

	var matchedCarrierID *kernel.UUID
	if dto.MatchedCarrierID != nil {
		carrierID, idErr := kernel.UUIDFromBytes((*dto.MatchedCarrierID)[:])
		if idErr != nil {
			return nil, idErr
		}
		matchedCarrierID = &carrierID
	}

	return shipment.RestoreRequest(id, spec, shipment.Status(dto.Status), matchedCarrierID, dto.CreatedAt)
}

// cargoToDomain rebuilds the cargo variant from the flattened row.
func cargoToDomain(dto ShipmentRequestDTO) (shipment.Cargo, error) {
	switch shipment.ShippingMode(dto.ShippingMode) {
	case shipment.ModePackages:
		var packageDTOs []packageDTO
		if err := json.Unmarshal(dto.Packages, &packageDTOs); err != nil {
			return nil, err
		}
		packages := make([]shipment.Package, 0, len(packageDTOs))
		for _, p := range packageDTOs {
			packages = append(packages, shipment.Package{
				LengthCm: p.LengthCm,
				WidthCm:  p.WidthCm,
				HeightCm: p.HeightCm,
				WeightKg: p.WeightKg,
			})
		}
		return shipment.NewPackagesCargo(packages)
	case shipment.ModeLoadingMeters:
		if dto.LoadingMeters == nil {
			return nil, fmt.Errorf("loading meters cargo without loading_meters value")
		}
		return shipment.NewLoadingMetersCargo(*dto.LoadingMeters, dto.CargoHeightCm, dto.CargoWeightKg)
	case shipment.ModeVehicleBooking:
		if dto.BookedVehicleType == nil {
			return nil, fmt.Errorf("vehicle booking cargo without booked_vehicle_type value")
		}
		return shipment.NewVehicleBookingCargo(*dto.BookedVehicleType)
	case shipment.ModeUnknown:
		return nil, fmt.Errorf("unsupported shipping mode: %d", dto.ShippingMode)
	}
	return nil, fmt.Errorf("unsupported shipping mode: %d", dto.ShippingMode)
}
