// pkg/execute/types.go

package execute

import (
	"time"

	"go.uber.org/zap"
)

// DefaultLogger is used when Options.Logger is nil; the zap global applies
// when both are unset.
var DefaultLogger *zap.Logger

// Options controls a single command execution.
type Options struct {
	Command string
	Args    []string
	Dir     string
	Capture bool
	DryRun  bool
	Retries int
	Delay   time.Duration
	Timeout time.Duration
	Logger  *zap.Logger
}
