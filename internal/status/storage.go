// Storage mapping — byte counts for the primary volume.
package status

import (
	"github.com/devlink-app/agent/internal/models"
	"github.com/devlink-app/agent/internal/platform"
)

// mapStorage computes used = total - free, floored at zero. Some
// filesystems report reserved blocks so free can exceed total.
func mapStorage(r platform.StorageReading) models.StorageInfo {
	info := models.StorageInfo{
		Total: r.TotalBytes,
		Free:  r.FreeBytes,
	}
	if r.TotalBytes > r.FreeBytes {
		info.Used = r.TotalBytes - r.FreeBytes
	}
	return info
}
