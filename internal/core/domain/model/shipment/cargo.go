package shipment

import (
	"freightmatch/internal/pkg/errs"
)

// ShippingMode identifies how the cargo of a request is described.
type ShippingMode int

const (
	// ModeUnknown represents an invalid or undefined shipping mode.
	ModeUnknown ShippingMode = iota

	// ModePackages describes cargo as a list of individual packages with
	// dimensions and weight.
	ModePackages

	// ModeLoadingMeters describes cargo by occupied loading meters with
	// optional height and weight.
	ModeLoadingMeters

	// ModeVehicleBooking books a whole vehicle of a given type; the cargo
	// itself is not itemized.
	ModeVehicleBooking
)

// String returns the wire name of the shipping mode.
func (m ShippingMode) String() string {
	switch m {
	case ModePackages:
		return "packages"
	case ModeLoadingMeters:
		return "loading_meters"
	case ModeVehicleBooking:
		return "vehicle_booking"
	case ModeUnknown:
		return "unknown"
	}
	return "unknown"
}

// Cargo is the sum type over the three shipping modes. Each variant carries
// only its relevant fields, so illegal field combinations are unrepresentable.
//
// Dimensions returns the per-axis cargo extent in centimeters where the
// variant can provide one; a nil pointer means "not specified". Only the
// packages variant reports dimensions - the capacity filter is a structural
// no-op for the other modes.
type Cargo interface {
	isCargo()
	Mode() ShippingMode
	Dimensions() (lengthCm, widthCm, heightCm *float64)
}

// Package is a single parcel within a packages-mode cargo.
type Package struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
	WeightKg float64
}

// PackagesCargo describes cargo as an itemized package list.
type PackagesCargo struct {
	packages []Package
}

// NewPackagesCargo creates a packages-mode cargo. At least one package is
// required and every dimension and weight must be positive.
func NewPackagesCargo(packages []Package) (PackagesCargo, error) {
	if len(packages) == 0 {
		return PackagesCargo{}, errs.NewValueIsRequiredError("packages")
	}

	for _, p := range packages {
		if p.LengthCm <= 0 || p.WidthCm <= 0 || p.HeightCm <= 0 || p.WeightKg <= 0 {
			return PackagesCargo{}, errs.NewValueIsInvalidError("package dimensions")
		}
	}

	copied := make([]Package, len(packages))
	copy(copied, packages)

	return PackagesCargo{packages: copied}, nil
}

func (PackagesCargo) isCargo() {}

// Mode returns ModePackages.
func (PackagesCargo) Mode() ShippingMode { return ModePackages }

// Packages returns the itemized package list.
func (c PackagesCargo) Packages() []Package {
	copied := make([]Package, len(c.packages))
	copy(copied, c.packages)
	return copied
}

// TotalWeightKg returns the summed weight of all packages.
func (c PackagesCargo) TotalWeightKg() float64 {
	var total float64
	for _, p := range c.packages {
		total += p.WeightKg
	}
	return total
}

// Dimensions returns the largest extent per axis across all packages.
// A single oversized package is what a carrier's cargo box must fit.
func (c PackagesCargo) Dimensions() (lengthCm, widthCm, heightCm *float64) {
	var maxLength, maxWidth, maxHeight float64
	for _, p := range c.packages {
		maxLength = max(maxLength, p.LengthCm)
		maxWidth = max(maxWidth, p.WidthCm)
		maxHeight = max(maxHeight, p.HeightCm)
	}
	return &maxLength, &maxWidth, &maxHeight
}

// LoadingMetersCargo describes cargo by occupied loading meters.
type LoadingMetersCargo struct {
	loadingMeters float64
	heightCm      *float64
	weightKg      *float64
}

// NewLoadingMetersCargo creates a loading-meters-mode cargo. Loading meters
// must be positive; height and weight are optional but positive when given.
func NewLoadingMetersCargo(loadingMeters float64, heightCm *float64, weightKg *float64) (LoadingMetersCargo, error) {
	if loadingMeters <= 0 {
		return LoadingMetersCargo{}, errs.NewValueIsInvalidError("loadingMeters")
	}
	if heightCm != nil && *heightCm <= 0 {
		return LoadingMetersCargo{}, errs.NewValueIsInvalidError("heightCm")
	}
	if weightKg != nil && *weightKg <= 0 {
		return LoadingMetersCargo{}, errs.NewValueIsInvalidError("weightKg")
	}

	return LoadingMetersCargo{
		loadingMeters: loadingMeters,
		heightCm:      heightCm,
		weightKg:      weightKg,
	}, nil
}

func (LoadingMetersCargo) isCargo() {}

// Mode returns ModeLoadingMeters.
func (LoadingMetersCargo) Mode() ShippingMode { return ModeLoadingMeters }

// LoadingMeters returns the occupied loading meters.
func (c LoadingMetersCargo) LoadingMeters() float64 { return c.loadingMeters }

// HeightCm returns the cargo height, nil when not specified.
func (c LoadingMetersCargo) HeightCm() *float64 { return c.heightCm }

// WeightKg returns the cargo weight, nil when not specified.
func (c LoadingMetersCargo) WeightKg() *float64 { return c.weightKg }

// Dimensions reports no per-axis extents; the capacity filter does not apply
// to loading-meters cargo.
func (LoadingMetersCargo) Dimensions() (lengthCm, widthCm, heightCm *float64) {
	return nil, nil, nil
}

// VehicleBookingCargo books a whole vehicle of a given type.
type VehicleBookingCargo struct {
	vehicleType string
}

// NewVehicleBookingCargo creates a vehicle-booking-mode cargo for the given
// vehicle type key (e.g. "sprinter", "lkw_7_5t").
func NewVehicleBookingCargo(vehicleType string) (VehicleBookingCargo, error) {
	if vehicleType == "" {
		return VehicleBookingCargo{}, errs.NewValueIsRequiredError("vehicleType")
	}
	return VehicleBookingCargo{vehicleType: vehicleType}, nil
}

func (VehicleBookingCargo) isCargo() {}

// Mode returns ModeVehicleBooking.
func (VehicleBookingCargo) Mode() ShippingMode { return ModeVehicleBooking }

// VehicleType returns the booked vehicle type key.
func (c VehicleBookingCargo) VehicleType() string { return c.vehicleType }

// Dimensions reports no per-axis extents; a vehicle booking carries no
// itemized cargo to fit.
func (VehicleBookingCargo) Dimensions() (lengthCm, widthCm, heightCm *float64) {
	return nil, nil, nil
}
