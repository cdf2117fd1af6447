// Network mapping — derives the categorical connectivity status and the
// transport list from the raw interface reading.
package status

import (
	"strings"

	"github.com/devlink-app/agent/internal/models"
	"github.com/devlink-app/agent/internal/platform"
)

// transportPrefixes maps interface-name prefixes to transport categories.
// Ordered: longer, more specific prefixes come before shorter ones so
// "wlan0" hits wifi before "wl" would, and "eno1" hits wired via "en".
var transportPrefixes = []struct {
	prefix    string
	transport models.Transport
}{
	{"wlan", models.TransportWifi},
	{"wifi", models.TransportWifi},
	{"wl", models.TransportWifi},
	{"ath", models.TransportWifi},
	{"wwan", models.TransportCellular},
	{"rmnet", models.TransportCellular},
	{"ppp", models.TransportCellular},
	{"cell", models.TransportCellular},
	{"eth", models.TransportWired},
	{"eno", models.TransportWired},
	{"ens", models.TransportWired},
	{"enp", models.TransportWired},
	{"en", models.TransportWired},
	{"em", models.TransportWired},
	{"lan", models.TransportWired},
}

// classifyTransport maps an interface name to a transport category.
// Unrecognized names are "other".
func classifyTransport(name string) models.Transport {
	lower := strings.ToLower(name)
	for _, p := range transportPrefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return p.transport
		}
	}
	return models.TransportOther
}

// mapNetwork derives the payload connectivity fields. An interface counts
// toward "online" when it is up, not loopback, and has an address; the
// transport list is deduplicated in first-seen order.
func mapNetwork(r platform.NetworkReading) models.NetworkInfo {
	info := models.NetworkInfo{
		Status:     models.NetworkOffline,
		Metered:    r.Metered,
		Restricted: r.Restricted,
		Transports: []models.Transport{},
	}

	seen := make(map[models.Transport]bool)
	for _, iface := range r.Interfaces {
		if !iface.Up || iface.Loopback || !iface.HasAddr {
			continue
		}
		info.Status = models.NetworkOnline
		t := classifyTransport(iface.Name)
		if !seen[t] {
			seen[t] = true
			info.Transports = append(info.Transports, t)
		}
	}
	return info
}
