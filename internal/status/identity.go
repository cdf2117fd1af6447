// Identity mapping — fills the device.info payload with per-field fallback
// strings for anything the platform reports empty.
package status

import (
	"runtime"
	"strings"

	"github.com/devlink-app/agent/internal/models"
	"github.com/devlink-app/agent/internal/platform"
)

// Documented fallbacks. The OS name falls back to runtime.GOOS instead of
// a constant.
const (
	fallbackName       = "unknown"
	fallbackModel      = "unknown"
	fallbackOSVersion  = "unknown"
	fallbackAppVersion = "dev"
	fallbackAppBuild   = "0"
	fallbackLocale     = "en-US"
)

// mapIdentity builds the info payload from the identity reading.
// Precedence per field: config override > platform reading > fallback.
func mapIdentity(r platform.IdentityReading, opts Options) models.InfoPayload {
	return models.InfoPayload{
		Name:  firstNonEmpty(opts.NameOverride, r.Hostname, fallbackName),
		Model: firstNonEmpty(opts.ModelOverride, r.Model, fallbackModel),
		OS: models.OSInfo{
			Name:    firstNonEmpty(r.OSName, runtime.GOOS),
			Version: firstNonEmpty(r.OSVersion, fallbackOSVersion),
		},
		App: models.AppInfo{
			Version: firstNonEmpty(opts.AppVersion, fallbackAppVersion),
			Build:   firstNonEmpty(opts.AppBuild, fallbackAppBuild),
		},
		Locale: firstNonEmpty(
			normalizeLocale(opts.LocaleOverride),
			normalizeLocale(r.Locale),
			fallbackLocale,
		),
	}
}

// normalizeLocale converts a POSIX locale like "en_US.UTF-8" into a
// BCP 47-style tag like "en-US". Returns "" for empty input so the caller
// can fall through.
func normalizeLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" {
		return ""
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	parts := strings.SplitN(raw, "-", 2)
	lang := strings.ToLower(parts[0])
	if len(parts) == 1 || parts[1] == "" {
		return lang
	}
	return lang + "-" + strings.ToUpper(parts[1])
}

// firstNonEmpty returns the first non-empty candidate.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
