package carrier

import "freightmatch/internal/core/domain/model/shipment"

// Equipment lists the loading/handling capabilities a carrier declares.
type Equipment struct {
	Liftgate    bool
	PalletJack  bool
	GPSTracking bool
	SideLoading bool
	Tarp        bool
}

// Satisfies reports whether every required capability is present.
func (e Equipment) Satisfies(required shipment.EquipmentRequirements) bool {
	if required.Liftgate && !e.Liftgate {
		return false
	}
	if required.PalletJack && !e.PalletJack {
		return false
	}
	if required.GPSTracking && !e.GPSTracking {
		return false
	}
	if required.SideLoading && !e.SideLoading {
		return false
	}
	if required.Tarp && !e.Tarp {
		return false
	}
	return true
}
