// Process uptime — whole seconds since the agent process started.
// Uses gopsutil for the cross-platform process create time.
package status

import (
	"context"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

// processUptimeSeconds returns seconds since the current process was
// created, floored at zero. Failures degrade to 0.
func processUptimeSeconds(ctx context.Context, logger *zap.Logger) int64 {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		logger.Debug("Process handle unavailable", zap.Error(err))
		return 0
	}
	createdMs, err := p.CreateTimeWithContext(ctx)
	if err != nil {
		logger.Debug("Process create time unavailable", zap.Error(err))
		return 0
	}
	secs := (time.Now().UnixMilli() - createdMs) / 1000
	if secs < 0 {
		return 0
	}
	return secs
}
