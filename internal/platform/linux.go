//go:build linux

// Linux Platform implementation.
// Battery and power-saver state come from sysfs; storage comes from a
// direct statfs call; sensors, interfaces, and host identity go through
// the shared gopsutil helpers.
package platform

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

const (
	powerSupplyRoot = "/sys/class/power_supply"
	governorPath    = "/sys/devices/system/cpu/cpu0/cpufreq/scaling_governor"
	storageRoot     = "/"
)

// LinuxPlatform implements Platform for Linux systems.
type LinuxPlatform struct{}

// New creates a Linux platform instance.
func New() Platform {
	return &LinuxPlatform{}
}

// Name returns the platform identifier.
func (p *LinuxPlatform) Name() string { return "linux" }

// Battery reads the first battery-class power supply under sysfs.
// Devices without a battery (servers, VMs) return Present=false.
func (p *LinuxPlatform) Battery(ctx context.Context) (BatteryReading, error) {
	reading := BatteryReading{Percent: -1, Saver: p.saverActive()}

	entries, err := os.ReadDir(powerSupplyRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return reading, nil
		}
		return reading, err
	}

	for _, entry := range entries {
		dir := filepath.Join(powerSupplyRoot, entry.Name())
		if readSysfsString(filepath.Join(dir, "type")) != "Battery" {
			continue
		}
		reading.Present = true
		reading.State = readSysfsString(filepath.Join(dir, "status"))
		if pct, err := strconv.ParseFloat(readSysfsString(filepath.Join(dir, "capacity")), 64); err == nil {
			reading.Percent = pct
		}
		break
	}
	return reading, nil
}

// Thermal returns sensor samples via gopsutil.
func (p *LinuxPlatform) Thermal(ctx context.Context) (ThermalReading, error) {
	return readSensors(ctx)
}

// Storage stats the root filesystem directly.
func (p *LinuxPlatform) Storage(ctx context.Context) (StorageReading, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(storageRoot, &st); err != nil {
		return StorageReading{}, err
	}
	bsize := uint64(st.Bsize)
	return StorageReading{
		TotalBytes: st.Blocks * bsize,
		// Bavail, not Bfree: report what unprivileged callers can use.
		FreeBytes: st.Bavail * bsize,
	}, nil
}

// Network returns the interface list. Linux has no portable metered or
// restricted signal, so both flags stay false.
func (p *LinuxPlatform) Network(ctx context.Context) (NetworkReading, error) {
	ifaces, err := readInterfaces(ctx)
	if err != nil {
		return NetworkReading{}, err
	}
	return NetworkReading{Interfaces: ifaces}, nil
}

// Identity returns hostname and OS info from gopsutil plus the DMI product
// name (or the devicetree model on ARM boards) as the model identifier.
func (p *LinuxPlatform) Identity(ctx context.Context) (IdentityReading, error) {
	reading, err := readHostIdentity(ctx)
	if err != nil {
		return reading, err
	}
	reading.Model = readSysfsString("/sys/devices/virtual/dmi/id/product_name")
	if reading.Model == "" {
		reading.Model = readSysfsString("/sys/firmware/devicetree/base/model")
	}
	return reading, nil
}

// saverActive treats the cpufreq "powersave" governor as the low-power flag.
func (p *LinuxPlatform) saverActive() bool {
	return readSysfsString(governorPath) == "powersave"
}

// readSysfsString reads a sysfs attribute, trimmed. Missing or unreadable
// attributes return "".
func readSysfsString(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	// Devicetree strings are NUL-terminated.
	return strings.TrimSpace(strings.TrimRight(string(data), "\x00"))
}
