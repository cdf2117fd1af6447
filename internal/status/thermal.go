// Thermal mapping — reduces the host's sensor samples to a single
// categorical pressure state based on the hottest valid reading.
package status

import (
	"github.com/devlink-app/agent/internal/models"
	"github.com/devlink-app/agent/internal/platform"
)

// minValidTemp is the minimum temperature (°C) considered valid.
const minValidTemp = 0.0

// maxValidTemp is the maximum temperature (°C) considered valid.
// Readings above this are likely sensor errors.
const maxValidTemp = 150.0

// Category thresholds (°C) applied to the hottest valid sensor.
const (
	thermalFairTemp     = 60.0
	thermalSeriousTemp  = 75.0
	thermalCriticalTemp = 90.0
)

// mapThermal returns the category for the hottest valid sensor reading,
// or ThermalUnknown when no sensor produced a valid sample.
func mapThermal(r platform.ThermalReading) models.ThermalState {
	var hottest float64
	found := false
	for _, s := range r.Sensors {
		if !isValidTemperature(s.Celsius) {
			continue
		}
		if !found || s.Celsius > hottest {
			hottest = s.Celsius
			found = true
		}
	}
	if !found {
		return models.ThermalUnknown
	}

	switch {
	case hottest < thermalFairTemp:
		return models.ThermalNominal
	case hottest < thermalSeriousTemp:
		return models.ThermalFair
	case hottest < thermalCriticalTemp:
		return models.ThermalSerious
	default:
		return models.ThermalCritical
	}
}

// isValidTemperature returns true if the temperature is within a plausible range.
func isValidTemperature(temp float64) bool {
	return temp > minValidTemp && temp <= maxValidTemp
}
