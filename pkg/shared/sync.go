// pkg/shared/sync.go

package shared

import (
	"strings"

	"go.uber.org/zap"
)

// SafeSync flushes the global zap logger, swallowing the spurious EBADF/ENOTTY
// errors zap returns when stdout is a terminal.
func SafeSync() {
	if err := zap.L().Sync(); err != nil {
		msg := err.Error()
		if strings.Contains(msg, "invalid argument") ||
			strings.Contains(msg, "inappropriate ioctl") ||
			strings.Contains(msg, "bad file descriptor") {
			return
		}
		zap.L().Warn("Failed to sync logger", zap.Error(err))
	}
}
