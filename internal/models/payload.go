// Package models defines the payload structures the agent reports to the
// gateway session. Payloads are value types built fresh for every request
// and serialized to JSON immediately.
package models

import "time"

// BatteryState is the normalized charging state reported to the gateway.
type BatteryState string

// Battery state categories. Raw platform states that don't fit any of
// these map to BatteryUnknown.
const (
	BatteryUnknown   BatteryState = "unknown"
	BatteryUnplugged BatteryState = "unplugged"
	BatteryCharging  BatteryState = "charging"
	BatteryFull      BatteryState = "full"
)

// ThermalState is the normalized thermal pressure category.
type ThermalState string

// Thermal categories, ordered by severity.
const (
	ThermalNominal  ThermalState = "nominal"
	ThermalFair     ThermalState = "fair"
	ThermalSerious  ThermalState = "serious"
	ThermalCritical ThermalState = "critical"
	ThermalUnknown  ThermalState = "unknown"
)

// NetworkStatus is the normalized connectivity state.
type NetworkStatus string

// Network status categories.
const (
	NetworkOnline  NetworkStatus = "online"
	NetworkOffline NetworkStatus = "offline"
	NetworkUnknown NetworkStatus = "unknown"
)

// Transport is a network medium category reported by the connectivity reading.
type Transport string

// Transport categories.
const (
	TransportWifi     Transport = "wifi"
	TransportCellular Transport = "cellular"
	TransportWired    Transport = "wired"
	TransportOther    Transport = "other"
)

// BatteryInfo holds the normalized battery fields of a status payload.
// Level is a fraction in [0,1]; nil means the device has no readable battery.
type BatteryInfo struct {
	Level *float64     `json:"level"`
	State BatteryState `json:"state"`
	Saver bool         `json:"saver"`
}

// StorageInfo holds byte counts for the primary storage volume.
// Used is always Total-Free floored at zero.
type StorageInfo struct {
	Total uint64 `json:"total"`
	Free  uint64 `json:"free"`
	Used  uint64 `json:"used"`
}

// NetworkInfo holds the normalized connectivity fields of a status payload.
type NetworkInfo struct {
	Status     NetworkStatus `json:"status"`
	Metered    bool          `json:"metered"`
	Restricted bool          `json:"restricted"`
	Transports []Transport   `json:"transports"`
}

// StatusPayload is the response body for a device.status request.
type StatusPayload struct {
	Battery       BatteryInfo  `json:"battery"`
	Thermal       ThermalState `json:"thermal"`
	Storage       StorageInfo  `json:"storage"`
	Network       NetworkInfo  `json:"network"`
	UptimeSeconds int64        `json:"uptime"`
}

// OSInfo identifies the operating system in an info payload.
type OSInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// AppInfo identifies the agent build in an info payload.
type AppInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
}

// InfoPayload is the response body for a device.info request.
// Every field carries a documented fallback instead of an empty string.
type InfoPayload struct {
	Name   string  `json:"name"`
	Model  string  `json:"model"`
	OS     OSInfo  `json:"os"`
	App    AppInfo `json:"app"`
	Locale string  `json:"locale"`
}

// ReportEnvelope wraps a payload with the method that produced it and a
// timestamp, for callers that log or archive responses.
type ReportEnvelope struct {
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}
