package game

import (
	"context"
	"fmt"
	"time"
)

// fuelTickInterval is how often a burning light source consumes fuel.
const fuelTickInterval = 60 * time.Second

// EmittedLight is the light the item currently contributes to its
// surroundings.
func (oi *ItemInstance) EmittedLight() int {
	def := oi.Def()
	if def == nil || !def.HasFlag(ItemFlagLightSource) || !oi.On {
		return 0
	}
	return def.LightLevel
}

// TurnOn lights a light source and arms its fuel burn. Refused when the
// item is already burning or out of fuel.
func (l *Living) TurnOn(oi *ItemInstance) error {
	def := oi.Def()
	if def == nil || !def.HasFlag(ItemFlagLightSource) {
		return ErrNotLightSource
	}
	if oi.On {
		return ErrAlreadyOn
	}
	if oi.Fuel <= 0 {
		return ErrNoFuel
	}

	oi.On = true
	l.armFuelJob(oi)
	return nil
}

func (l *Living) armFuelJob(oi *ItemInstance) {
	if l.sched == nil {
		return
	}
	l.sched.Schedule(fuelJobKey(oi), fuelTickInterval, func(ctx context.Context) {
		l.consumeFuel(oi)
	})
}

// RearmLights resumes the fuel burn of any carried light source that was
// saved while burning.
func (l *Living) RearmLights() {
	l.Inventory().Each(func(oi *ItemInstance) {
		if oi.On {
			l.armFuelJob(oi)
		}
	})
}

// StopLightJobs halts the fuel burn of every carried light source without
// extinguishing it, so a later load can resume the burn.
func (l *Living) StopLightJobs() {
	l.Inventory().Each(func(oi *ItemInstance) {
		if oi.On {
			l.stopFuelJob(oi)
		}
	})
}

// TurnOff extinguishes a light source and stops its fuel burn. Refused when
// the item is not burning.
func (l *Living) TurnOff(oi *ItemInstance) error {
	def := oi.Def()
	if def == nil || !def.HasFlag(ItemFlagLightSource) {
		return ErrNotLightSource
	}
	if !oi.On {
		return ErrAlreadyOff
	}

	oi.On = false
	l.stopFuelJob(oi)
	return nil
}

func (l *Living) consumeFuel(oi *ItemInstance) {
	if !oi.On {
		l.stopFuelJob(oi)
		return
	}

	oi.Fuel -= oi.Def().ConsumeRate
	if oi.Fuel > 0 {
		return
	}

	oi.Fuel = 0
	oi.On = false
	l.stopFuelJob(oi)

	text := fmt.Sprintf("%s sputters out.", oi.Def().ShortDesc)
	l.Msg(text)
	l.Broadcast(text)
}

func (l *Living) stopFuelJob(oi *ItemInstance) {
	if l.sched != nil {
		l.sched.StopAll(fuelJobKey(oi))
	}
}

func fuelJobKey(oi *ItemInstance) string {
	return fmt.Sprintf("fuel-%s", oi.InstanceId)
}
