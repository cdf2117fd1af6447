// Shared reading helpers used by all Platform implementations.
// Uses gopsutil for cross-platform sensor, interface, and host queries.
package platform

import (
	"context"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/net"
)

// readSensors gathers thermal sensor samples via gopsutil.
// An empty reading (not an error) is returned when the host exposes no sensors.
func readSensors(ctx context.Context) (ThermalReading, error) {
	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil {
		return ThermalReading{}, err
	}
	reading := ThermalReading{}
	for _, t := range temps {
		reading.Sensors = append(reading.Sensors, SensorReading{
			Key:     t.SensorKey,
			Celsius: t.Temperature,
		})
	}
	return reading, nil
}

// readInterfaces gathers the interface list via gopsutil.
func readInterfaces(ctx context.Context) ([]InterfaceReading, error) {
	ifaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	readings := make([]InterfaceReading, 0, len(ifaces))
	for _, iface := range ifaces {
		r := InterfaceReading{
			Name:    iface.Name,
			HasAddr: len(iface.Addrs) > 0,
		}
		for _, flag := range iface.Flags {
			switch strings.ToLower(flag) {
			case "up":
				r.Up = true
			case "loopback":
				r.Loopback = true
			}
		}
		readings = append(readings, r)
	}
	return readings, nil
}

// readHostIdentity gathers hostname and OS name/version via gopsutil.
// Model is left empty here; platform-specific code fills it where the OS
// exposes one.
func readHostIdentity(ctx context.Context) (IdentityReading, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return IdentityReading{}, err
	}
	return IdentityReading{
		Hostname:  info.Hostname,
		OSName:    info.Platform,
		OSVersion: info.PlatformVersion,
		Locale:    localeFromEnv(),
	}, nil
}

// readStorageAt returns byte counts for the volume mounted at path.
func readStorageAt(ctx context.Context, path string) (StorageReading, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return StorageReading{}, err
	}
	return StorageReading{
		TotalBytes: usage.Total,
		FreeBytes:  usage.Free,
	}, nil
}

// localeFromEnv reads the POSIX locale environment, first match wins.
// Returns "" when unset; the adapter applies the documented fallback.
func localeFromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return ""
}
