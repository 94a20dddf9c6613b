package carrier

import (
	"errors"
	"strings"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/pkg/errs"
)

// ErrCarrierIsNotConstructed is returned when a Carrier was not created via
// NewCarrier or RestoreCarrier.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier constructor")

// CarrierSpec carries the declared profile of a carrier. Optional numeric
// fields are pointers; the constructor validates whatever is present.
type CarrierSpec struct {
	Name string

	// ContactEmail receives transport invitations, empty when the carrier is
	// contacted out of band.
	ContactEmail string

	Location        *kernel.GeoPoint
	ServiceRadiusKm *float64
	IgnoreRadius    bool

	HasTransporter bool
	HasLKW         bool

	// Cargo box dimensions of the LKW, nil when the carrier did not declare them.
	BoxLengthCm *float64
	BoxWidthCm  *float64
	BoxHeightCm *float64

	Equipment Equipment

	PickupCountries   kernel.CountrySet
	DeliveryCountries kernel.CountrySet

	Active      bool
	Blacklisted bool
}

// Carrier is a transport provider with declared coverage, fleet and
// equipment. Carriers never mutate during a matching run; the pipeline treats
// them as read-only input.
type Carrier struct {
	id           kernel.UUID
	name         string
	contactEmail string

	location        *kernel.GeoPoint
	serviceRadiusKm *float64
	ignoreRadius    bool

	hasTransporter bool
	hasLKW         bool

	boxLengthCm *float64
	boxWidthCm  *float64
	boxHeightCm *float64

	equipment Equipment

	pickupCountries   kernel.CountrySet
	deliveryCountries kernel.CountrySet

	active      bool
	blacklisted bool

	isConstructed bool
}

// NewCarrier creates a carrier profile.
func NewCarrier(id kernel.UUID, spec CarrierSpec) (*Carrier, error) {
	c := &Carrier{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setSpec(spec),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a carrier from persistence.
func RestoreCarrier(id kernel.UUID, spec CarrierSpec) (*Carrier, error) {
	return NewCarrier(id, spec)
}

// Validate checks if the Carrier was properly constructed.
func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// IsEqual compares two carriers by identity.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier identifier.
func (c *Carrier) ID() kernel.UUID { return c.id }

// Name returns the carrier's company name.
func (c *Carrier) Name() string { return c.name }

// ContactEmail returns the invitation recipient address, empty when none is on file.
func (c *Carrier) ContactEmail() string { return c.contactEmail }

// Location returns the carrier's base coordinates, nil when unknown.
func (c *Carrier) Location() *kernel.GeoPoint { return c.location }

// ServiceRadiusKm returns the declared service radius, nil when not configured.
func (c *Carrier) ServiceRadiusKm() *float64 { return c.serviceRadiusKm }

// IgnoresRadius reports whether the carrier serves any distance regardless of
// its configured radius.
func (c *Carrier) IgnoresRadius() bool { return c.ignoreRadius }

// HasTransporter reports whether the fleet includes a transporter (van).
func (c *Carrier) HasTransporter() bool { return c.hasTransporter }

// HasLKW reports whether the fleet includes an LKW (truck).
func (c *Carrier) HasLKW() bool { return c.hasLKW }

// CargoBox returns the declared LKW cargo box dimensions; each value is nil
// when the carrier did not declare it.
func (c *Carrier) CargoBox() (lengthCm, widthCm, heightCm *float64) {
	return c.boxLengthCm, c.boxWidthCm, c.boxHeightCm
}

// Equipment returns the carrier's equipment capability flags.
func (c *Carrier) Equipment() Equipment { return c.equipment }

// PickupCountries returns the set of countries the carrier picks up in.
func (c *Carrier) PickupCountries() kernel.CountrySet { return c.pickupCountries }

// DeliveryCountries returns the set of countries the carrier delivers to.
func (c *Carrier) DeliveryCountries() kernel.CountrySet { return c.deliveryCountries }

// IsActive reports whether the carrier participates in matching at all.
func (c *Carrier) IsActive() bool { return c.active }

// IsBlacklisted reports whether the carrier is excluded from matching.
func (c *Carrier) IsBlacklisted() bool { return c.blacklisted }

// SupportsVehicle reports whether the carrier's fleet can serve the given
// vehicle requirement. VehicleEither accepts any fleet.
func (c *Carrier) SupportsVehicle(requirement shipment.VehicleRequirement) bool {
	switch requirement {
	case shipment.VehicleTransporter:
		return c.hasTransporter
	case shipment.VehicleLKW:
		return c.hasLKW
	case shipment.VehicleEither, shipment.VehicleUnknown:
		return true
	}
	return true
}

// CoversRoute reports whether the carrier's coverage sets contain both the
// pickup and the delivery country. An empty coverage set covers nothing.
func (c *Carrier) CoversRoute(pickupCountry string, deliveryCountry string) bool {
	return c.pickupCountries.Contains(pickupCountry) &&
		c.deliveryCountries.Contains(deliveryCountry)
}

// HasCapacityFor checks the declared cargo box against the requested cargo
// dimensions, per axis and independently. The check is intentionally
// permissive: a nil requested dimension or a nil declared capacity passes.
// Missing carrier data means "assume adequate" - over-matching is preferred
// over missing a viable carrier, since carriers can decline unsuitable offers.
func (c *Carrier) HasCapacityFor(lengthCm, widthCm, heightCm *float64) bool {
	return fitsDimension(c.boxLengthCm, lengthCm) &&
		fitsDimension(c.boxWidthCm, widthCm) &&
		fitsDimension(c.boxHeightCm, heightCm)
}

// MeetsEquipment reports whether the carrier has every capability the request
// requires. Unlike capacity, this check is strict: a required flag the
// carrier lacks excludes it.
func (c *Carrier) MeetsEquipment(required shipment.EquipmentRequirements) bool {
	return c.equipment.Satisfies(required)
}

func fitsDimension(capacity *float64, requested *float64) bool {
	if requested == nil || capacity == nil {
		return true
	}
	return *capacity >= *requested
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setSpec(spec CarrierSpec) error {
	if spec.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if spec.ContactEmail != "" && !strings.Contains(spec.ContactEmail, "@") {
		return errs.NewValueIsInvalidError("contactEmail")
	}
	if spec.Location != nil {
		if err := spec.Location.Validate(); err != nil {
			return err
		}
	}
	if spec.ServiceRadiusKm != nil && *spec.ServiceRadiusKm < 0 {
		return errs.NewValueIsInvalidError("serviceRadiusKm")
	}
	for _, dim := range []*float64{spec.BoxLengthCm, spec.BoxWidthCm, spec.BoxHeightCm} {
		if dim != nil && *dim <= 0 {
			return errs.NewValueIsInvalidError("cargo box dimension")
		}
	}

	c.name = spec.Name
	c.contactEmail = spec.ContactEmail
	c.location = spec.Location
	c.serviceRadiusKm = spec.ServiceRadiusKm
	c.ignoreRadius = spec.IgnoreRadius
	c.hasTransporter = spec.HasTransporter
	c.hasLKW = spec.HasLKW
	c.boxLengthCm = spec.BoxLengthCm
	c.boxWidthCm = spec.BoxWidthCm
	c.boxHeightCm = spec.BoxHeightCm
	c.equipment = spec.Equipment
	c.pickupCountries = spec.PickupCountries
	c.deliveryCountries = spec.DeliveryCountries
	c.active = spec.Active
	c.blacklisted = spec.Blacklisted
	return nil
}
