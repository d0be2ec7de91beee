// pkg/argus_unix/systemctl.go

package argus_unix

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_err"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/execute"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Systemctl exit codes, per systemctl(1). is-active returns 3 for
// inactive/dead units and 4 when the state is unknown.
const (
	ExitSuccess     = 0
	ExitGenericFail = 1
	ExitInactive    = 3
	ExitUnknown     = 4
	ExitNotLoaded   = 5
)

// InterpretIsActiveExitCode maps an `systemctl is-active` exit code to a state string.
func InterpretIsActiveExitCode(exitCode int) string {
	switch exitCode {
	case ExitSuccess:
		return "active"
	case ExitInactive:
		return "inactive"
	case ExitUnknown:
		return "unknown"
	case ExitNotLoaded:
		return "not loaded"
	default:
		return fmt.Sprintf("unknown exit code %d", exitCode)
	}
}

// HasSystemctl reports whether a systemd-style service manager is available.
func HasSystemctl() bool {
	_, err := exec.LookPath("systemctl")
	return err == nil
}

// HasService reports whether the generic service-control command is available.
func HasService() bool {
	_, err := exec.LookPath("service")
	return err == nil
}

// UnitIsActive checks whether the named unit reports "active" via systemctl.
func UnitIsActive(ctx context.Context, unit string) bool {
	logger := otelzap.Ctx(ctx)

	output, err := execute.Run(ctx, execute.Options{
		Command: "systemctl",
		Args:    []string{"is-active", unit},
		Capture: true,
	})

	state := strings.TrimSpace(output)
	logger.Debug("Unit state probed",
		zap.String("unit", unit),
		zap.String("state", state),
		zap.Bool("active", err == nil && state == "active"))

	return err == nil && state == "active"
}

// RestartUnit restarts a unit with systemctl.
func RestartUnit(ctx context.Context, unit string) error {
	logger := otelzap.Ctx(ctx)
	logger.Info("Restarting systemd unit", zap.String("unit", unit))

	output, err := execute.Run(ctx, execute.Options{
		Command: "systemctl",
		Args:    []string{"restart", unit},
		Capture: true,
	})
	if err != nil {
		logger.Error("systemd unit restart failed",
			zap.String("unit", unit),
			zap.String("output", output),
			zap.Error(err))
		return fmt.Errorf("systemctl restart %s: %w", unit, err)
	}

	logger.Info("systemd unit restarted", zap.String("unit", unit))
	return nil
}

// RestartSSHDaemon restarts the SSH daemon using whatever service tooling the
// host provides. With systemd, the active unit is detected first: distributions
// name the unit either sshd or ssh. Without systemd the generic service command
// is tried for both names. When no tooling responds, an expected error asks the
// operator to restart manually; config edits are never rolled back.
func RestartSSHDaemon(ctx context.Context) error {
	logger := otelzap.Ctx(ctx)

	// ASSESS - Find the service manager and the unit name
	logger.Info("Assessing service management tooling for SSH daemon restart")

	if HasSystemctl() {
		for _, unit := range []string{"sshd", "ssh"} {
			if UnitIsActive(ctx, unit) {
				// INTERVENE
				if err := RestartUnit(ctx, unit); err != nil {
					return err
				}
				// EVALUATE
				if !UnitIsActive(ctx, unit) {
					return fmt.Errorf("unit %s did not come back after restart", unit)
				}
				logger.Info("SSH daemon restarted", zap.String("unit", unit))
				return nil
			}
		}
		logger.Warn("No active sshd/ssh unit found via systemctl, trying generic service command")
	}

	if HasService() {
		for _, unit := range []string{"sshd", "ssh"} {
			output, err := execute.Run(ctx, execute.Options{
				Command: "service",
				Args:    []string{unit, "restart"},
				Capture: true,
			})
			if err == nil {
				logger.Info("SSH daemon restarted via service command", zap.String("unit", unit))
				return nil
			}
			logger.Debug("service restart attempt failed",
				zap.String("unit", unit),
				zap.String("output", output),
				zap.Error(err))
		}
	}

	logger.Warn("No usable service management tooling found; SSH daemon must be restarted manually")
	return argus_err.NewExpectedError(ctx, fmt.Errorf(
		"could not restart the SSH daemon automatically; restart it manually with "+
			"'sudo systemctl restart sshd' or 'sudo service ssh restart'"))
}
