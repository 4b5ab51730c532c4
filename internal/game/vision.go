package game

// Vision models whether an entity can see its surroundings. Sight requires
// the entity to be perceiving at all (the dead are not) and the room to be
// lit at or above the entity's light threshold.
type Vision struct {
	owner    *Living
	disabled bool
}

func newVision(owner *Living) *Vision {
	return &Vision{owner: owner}
}

// Threshold is the minimum room light level the entity needs to see.
func (v *Vision) Threshold() int {
	return v.owner.Char.LightThreshold
}

// CanSee reports whether the entity can currently see.
func (v *Vision) CanSee() bool {
	if v.disabled {
		return false
	}
	room := v.owner.Room()
	if room == nil {
		return true
	}
	return room.LightLevel() >= v.Threshold()
}

func (v *Vision) Disable() {
	v.disabled = true
}

func (v *Vision) Enable() {
	v.disabled = false
}
