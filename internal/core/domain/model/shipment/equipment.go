package shipment

// EquipmentRequirements are the boolean equipment needs of a request.
// Each flag a request sets must be matched by the corresponding carrier
// capability; unset flags impose no constraint. All-false is a valid value.
type EquipmentRequirements struct {
	Liftgate    bool
	PalletJack  bool
	GPSTracking bool
	SideLoading bool
	Tarp        bool
}

// Any reports whether at least one equipment flag is required.
func (e EquipmentRequirements) Any() bool {
	return e.Liftgate || e.PalletJack || e.GPSTracking || e.SideLoading || e.Tarp
}
