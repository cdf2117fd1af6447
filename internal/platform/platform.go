// Package platform provides an OS abstraction layer for the raw device
// signals the status adapter maps. Each supported OS implements the
// Platform interface; readings carry platform-native values (raw state
// strings, percentages, sensor keys) and are never normalized here —
// translation to payload categories happens in the status package.
package platform

import "context"

// BatteryReading is the raw battery signal from the OS.
type BatteryReading struct {
	// Present is false when the device has no readable battery.
	Present bool

	// Percent is the charge level in [0,100], or -1 when unknown.
	Percent float64

	// State is the platform's raw charging state string
	// (e.g. "Charging", "Discharging", "Full", "Not charging").
	State string

	// Saver reports whether a low-power / battery-saver mode is active.
	Saver bool
}

// SensorReading is a single thermal sensor sample.
type SensorReading struct {
	Key     string
	Celsius float64
}

// ThermalReading is the set of thermal sensor samples available on the host.
type ThermalReading struct {
	Sensors []SensorReading
}

// StorageReading holds byte counts for the primary storage volume.
type StorageReading struct {
	TotalBytes uint64
	FreeBytes  uint64
}

// InterfaceReading describes one network interface as the OS reports it.
type InterfaceReading struct {
	Name     string
	Up       bool
	Loopback bool
	HasAddr  bool
}

// NetworkReading is the raw connectivity signal from the OS.
type NetworkReading struct {
	Interfaces []InterfaceReading
	Metered    bool
	Restricted bool
}

// IdentityReading holds the raw identity strings the OS exposes.
// Empty strings are allowed; the adapter substitutes documented fallbacks.
type IdentityReading struct {
	Hostname  string
	Model     string
	OSName    string
	OSVersion string
	Locale    string
}

// Platform exposes the raw device signals of the host OS.
// Implementations must be safe for concurrent use.
type Platform interface {
	// Name returns the platform identifier (linux, windows, stub).
	Name() string

	// Battery returns the raw battery reading.
	Battery(ctx context.Context) (BatteryReading, error)

	// Thermal returns the available thermal sensor samples.
	Thermal(ctx context.Context) (ThermalReading, error)

	// Storage returns byte counts for the primary storage volume.
	Storage(ctx context.Context) (StorageReading, error)

	// Network returns the raw connectivity reading.
	Network(ctx context.Context) (NetworkReading, error)

	// Identity returns the raw device identity strings.
	Identity(ctx context.Context) (IdentityReading, error)
}
