package shipment

import (
	"fmt"

	"freightmatch/internal/pkg/errs"
)

// VehicleRequirement narrows which fleet segment of a carrier can serve a
// request. VehicleEither accepts both segments.
type VehicleRequirement int

const (
	// VehicleUnknown represents an invalid or undefined requirement.
	VehicleUnknown VehicleRequirement = iota

	// VehicleEither matches carriers with a transporter or an LKW.
	VehicleEither

	// VehicleTransporter requires a carrier with a transporter (van).
	VehicleTransporter

	// VehicleLKW requires a carrier with an LKW (truck).
	VehicleLKW
)

// Validate checks if the VehicleRequirement value is valid.
func (v VehicleRequirement) Validate() error {
	switch v {
	case VehicleEither, VehicleTransporter, VehicleLKW:
		return nil
	case VehicleUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("vehicle requirement is invalid",
		fmt.Errorf("%d is not a valid vehicle requirement", v))
}

// String returns the wire name of the requirement.
func (v VehicleRequirement) String() string {
	switch v {
	case VehicleEither:
		return "either"
	case VehicleTransporter:
		return "transporter"
	case VehicleLKW:
		return "lkw"
	case VehicleUnknown:
		return "unknown"
	}
	return "unknown"
}
