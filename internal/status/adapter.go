// Package status implements the device-status adapter: a stateless,
// single-pass mapping from platform readings to the two gateway payloads.
// Each payload is built fresh per call; a failed reading degrades that
// signal to its documented fallback and never fails the whole payload.
package status

import (
	"context"

	"go.uber.org/zap"

	"github.com/devlink-app/agent/internal/models"
	"github.com/devlink-app/agent/internal/platform"
)

// Options carries build identity and config overrides into the adapter.
// Zero values mean "use the platform reading (or its fallback)".
type Options struct {
	AppVersion     string
	AppBuild       string
	NameOverride   string
	ModelOverride  string
	LocaleOverride string
}

// Adapter maps platform readings to gateway payloads.
// It holds only a platform handle and a logger — no per-call state.
type Adapter struct {
	platform platform.Platform
	logger   *zap.Logger
	opts     Options
}

// New creates an Adapter for the given platform. Pass nil for no logging.
func New(pf platform.Platform, logger *zap.Logger, opts Options) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		platform: pf,
		logger:   logger,
		opts:     opts,
	}
}

// Status builds the device.status payload in a single pass over the
// platform getters.
func (a *Adapter) Status(ctx context.Context) models.StatusPayload {
	payload := models.StatusPayload{
		Battery: models.BatteryInfo{State: models.BatteryUnknown},
		Thermal: models.ThermalUnknown,
		Network: models.NetworkInfo{
			Status:     models.NetworkUnknown,
			Transports: []models.Transport{},
		},
	}

	if reading, err := a.platform.Battery(ctx); err != nil {
		a.logger.Warn("Battery reading failed", zap.Error(err))
	} else {
		payload.Battery = mapBattery(reading)
	}

	if reading, err := a.platform.Thermal(ctx); err != nil {
		a.logger.Debug("Thermal sensors not available", zap.Error(err))
	} else {
		payload.Thermal = mapThermal(reading)
	}

	if reading, err := a.platform.Storage(ctx); err != nil {
		a.logger.Warn("Storage reading failed", zap.Error(err))
	} else {
		payload.Storage = mapStorage(reading)
	}

	if reading, err := a.platform.Network(ctx); err != nil {
		a.logger.Warn("Network reading failed", zap.Error(err))
	} else {
		payload.Network = mapNetwork(reading)
	}

	payload.UptimeSeconds = processUptimeSeconds(ctx, a.logger)

	return payload
}

// Info builds the device.info payload. A failed identity reading leaves
// every field on its documented fallback.
func (a *Adapter) Info(ctx context.Context) models.InfoPayload {
	reading, err := a.platform.Identity(ctx)
	if err != nil {
		a.logger.Warn("Identity reading failed", zap.Error(err))
		reading = platform.IdentityReading{}
	}
	return mapIdentity(reading, a.opts)
}
