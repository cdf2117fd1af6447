// Battery mapping — translates the raw platform charging state and charge
// percentage into the payload's categorical state and fractional level.
package status

import (
	"strings"

	"github.com/devlink-app/agent/internal/models"
	"github.com/devlink-app/agent/internal/platform"
)

// batteryStates maps raw platform state strings (lowercased) to payload
// categories. Covers the sysfs vocabulary and its common spelling variants.
var batteryStates = map[string]models.BatteryState{
	"charging":     models.BatteryCharging,
	"full":         models.BatteryFull,
	"discharging":  models.BatteryUnplugged,
	"not charging": models.BatteryUnplugged,
	"not_charging": models.BatteryUnplugged,
	"not-charging": models.BatteryUnplugged,
	"unknown":      models.BatteryUnknown,
}

// mapBattery translates a raw battery reading into payload fields.
// Absent batteries keep a nil level and the unknown state; out-of-range
// percentages also map to a nil level.
func mapBattery(r platform.BatteryReading) models.BatteryInfo {
	info := models.BatteryInfo{
		State: models.BatteryUnknown,
		Saver: r.Saver,
	}
	if !r.Present {
		return info
	}

	key := strings.ToLower(strings.TrimSpace(r.State))
	if state, ok := batteryStates[key]; ok {
		info.State = state
	}

	if r.Percent >= 0 && r.Percent <= 100 {
		level := r.Percent / 100
		info.Level = &level
	}
	return info
}
