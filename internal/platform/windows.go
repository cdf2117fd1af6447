//go:build windows

// Windows Platform implementation.
// Battery and battery-saver state come from GetSystemPowerStatus; sensors,
// interfaces, and host identity go through the shared gopsutil helpers.
package platform

import (
	"context"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemPowerStatus = kernel32.NewProc("GetSystemPowerStatus")
)

// systemPowerStatus mirrors the Win32 SYSTEM_POWER_STATUS structure.
type systemPowerStatus struct {
	ACLineStatus        byte
	BatteryFlag         byte
	BatteryLifePercent  byte
	SystemStatusFlag    byte
	BatteryLifeTime     uint32
	BatteryFullLifeTime uint32
}

const (
	batteryFlagNoBattery = 128
	batteryFlagCharging  = 8
	batteryFlagUnknown   = 255
	acLineOnline         = 1
	percentUnknown       = 255
)

// WindowsPlatform implements Platform for Windows systems.
type WindowsPlatform struct{}

// New creates a Windows platform instance.
func New() Platform {
	return &WindowsPlatform{}
}

// Name returns the platform identifier.
func (p *WindowsPlatform) Name() string { return "windows" }

// Battery reads the system power status. The raw State string mimics the
// sysfs vocabulary so one translation table covers all platforms.
func (p *WindowsPlatform) Battery(ctx context.Context) (BatteryReading, error) {
	var st systemPowerStatus
	ret, _, err := procGetSystemPowerStatus.Call(uintptr(unsafe.Pointer(&st)))
	if ret == 0 {
		return BatteryReading{Percent: -1}, err
	}

	reading := BatteryReading{
		Percent: -1,
		// SystemStatusFlag bit 0 is "battery saver on".
		Saver: st.SystemStatusFlag&1 != 0,
	}

	if st.BatteryFlag == batteryFlagNoBattery {
		return reading, nil
	}
	reading.Present = true

	if st.BatteryLifePercent != percentUnknown {
		reading.Percent = float64(st.BatteryLifePercent)
	}

	switch {
	case st.BatteryFlag == batteryFlagUnknown:
		reading.State = "Unknown"
	case st.BatteryFlag&batteryFlagCharging != 0:
		reading.State = "Charging"
	case st.ACLineStatus == acLineOnline && st.BatteryLifePercent >= 100:
		reading.State = "Full"
	case st.ACLineStatus == acLineOnline:
		reading.State = "Not charging"
	default:
		reading.State = "Discharging"
	}
	return reading, nil
}

// Thermal returns sensor samples via gopsutil.
func (p *WindowsPlatform) Thermal(ctx context.Context) (ThermalReading, error) {
	return readSensors(ctx)
}

// Storage reports the system drive.
func (p *WindowsPlatform) Storage(ctx context.Context) (StorageReading, error) {
	root := os.Getenv("SystemDrive")
	if root == "" {
		root = "C:"
	}
	return readStorageAt(ctx, root+`\`)
}

// Network returns the interface list. Metered status lives in the Windows
// connection profile store, which is per-network and not exposed through a
// stable Win32 API, so the flag stays false.
func (p *WindowsPlatform) Network(ctx context.Context) (NetworkReading, error) {
	ifaces, err := readInterfaces(ctx)
	if err != nil {
		return NetworkReading{}, err
	}
	return NetworkReading{Interfaces: ifaces}, nil
}

// Identity returns hostname and OS info from gopsutil. Windows exposes no
// cheap model string, so the adapter's fallback applies.
func (p *WindowsPlatform) Identity(ctx context.Context) (IdentityReading, error) {
	return readHostIdentity(ctx)
}
