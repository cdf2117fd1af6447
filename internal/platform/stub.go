//go:build !windows && !linux

// Stub Platform implementation for platforms without native battery access.
// Storage, thermal, network, and identity still work through the shared
// gopsutil helpers; the battery reports as absent.
package platform

import "context"

// StubPlatform is the Platform for operating systems without a native
// battery reader.
type StubPlatform struct{}

// New creates a stub platform instance.
func New() Platform {
	return &StubPlatform{}
}

// Name returns the platform identifier.
func (p *StubPlatform) Name() string { return "stub" }

// Battery reports no readable battery.
func (p *StubPlatform) Battery(ctx context.Context) (BatteryReading, error) {
	return BatteryReading{Percent: -1}, nil
}

// Thermal returns sensor samples via gopsutil.
func (p *StubPlatform) Thermal(ctx context.Context) (ThermalReading, error) {
	return readSensors(ctx)
}

// Storage reports the root filesystem.
func (p *StubPlatform) Storage(ctx context.Context) (StorageReading, error) {
	return readStorageAt(ctx, "/")
}

// Network returns the interface list with both flags false.
func (p *StubPlatform) Network(ctx context.Context) (NetworkReading, error) {
	ifaces, err := readInterfaces(ctx)
	if err != nil {
		return NetworkReading{}, err
	}
	return NetworkReading{Interfaces: ifaces}, nil
}

// Identity returns hostname and OS info from gopsutil.
func (p *StubPlatform) Identity(ctx context.Context) (IdentityReading, error) {
	return readHostIdentity(ctx)
}
