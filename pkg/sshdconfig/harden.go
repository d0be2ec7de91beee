// pkg/sshdconfig/harden.go

package sshdconfig

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_err"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/shared"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// EnsurePubkeyAuthentication drives PubkeyAuthentication to an active yes.
// If an active yes line already exists the directive is left entirely alone,
// including any stray commented variants. Otherwise every line naming the
// directive is removed and a single fresh active line appended, so exactly one
// active setting survives.
func EnsurePubkeyAuthentication(ctx context.Context, lines []string) ([]string, bool) {
	logger := otelzap.Ctx(ctx)

	for _, line := range lines {
		if IsActive(line, DirectivePubkeyAuth, "yes") {
			logger.Info("PubkeyAuthentication already active, no change")
			return lines, false
		}
	}

	out := make([]string, 0, len(lines)+1)
	removed := 0
	for _, line := range lines {
		if Mentions(line, DirectivePubkeyAuth) {
			removed++
			continue
		}
		out = append(out, line)
	}
	out = append(out, DirectivePubkeyAuth+" yes")

	logger.Info("Enabled PubkeyAuthentication",
		zap.Int("lines_removed", removed))
	return out, true
}

// DisablePasswordAuthentication drives PasswordAuthentication away from yes.
// Active yes lines are flipped to no in place; failing that, commented-out yes
// lines are replaced with an active no. When neither form is present the file
// is untouched: an absent directive and an explicit no are treated identically.
func DisablePasswordAuthentication(ctx context.Context, lines []string) ([]string, bool) {
	logger := otelzap.Ctx(ctx)

	changed := false
	for i, line := range lines {
		if IsActive(line, DirectivePasswordAuth, "yes") {
			lines[i] = DirectivePasswordAuth + " no"
			changed = true
		}
	}
	if changed {
		logger.Info("Flipped active PasswordAuthentication to no")
		return lines, true
	}

	for i, line := range lines {
		if IsCommented(line, DirectivePasswordAuth, "yes") {
			lines[i] = DirectivePasswordAuth + " no"
			changed = true
		}
	}
	if changed {
		logger.Info("Replaced commented PasswordAuthentication with active no")
		return lines, true
	}

	logger.Info("PasswordAuthentication already safe, no change")
	return lines, false
}

// CheckWritable fails fast when the daemon config cannot be edited, before any
// partial change is attempted.
func CheckWritable(ctx context.Context, path string) error {
	logger := otelzap.Ctx(ctx)

	if _, err := os.Stat(path); err != nil {
		logger.Error("Daemon config not accessible", zap.String("path", path), zap.Error(err))
		return argus_err.NewFilesystemError(
			fmt.Sprintf("daemon config %s not accessible", path), err,
			"Check that the SSH server is installed and the path is correct",
		)
	}

	if err := unix.Access(path, unix.W_OK); err != nil {
		logger.Error("Daemon config not writable", zap.String("path", path), zap.Error(err))
		return argus_err.NewPermissionError(path, "write",
			"Re-run with root privileges (sudo)",
		)
	}
	return nil
}

// Harden edits the daemon config in place so that public-key authentication is
// required and password authentication is forbidden. The precondition is a
// writable config path; on failure nothing is modified.
func Harden(ctx context.Context, path string) error {
	logger := otelzap.Ctx(ctx)

	// ASSESS
	logger.Info("Assessing daemon config", zap.String("path", path))
	if err := CheckWritable(ctx, path); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	content := string(data)
	trailingNewline := strings.HasSuffix(content, "\n")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	// INTERVENE
	lines, pubkeyChanged := EnsurePubkeyAuthentication(ctx, lines)
	lines, passwordChanged := DisablePasswordAuthentication(ctx, lines)

	if !pubkeyChanged && !passwordChanged {
		logger.Info("Daemon config already hardened, nothing to write")
		return nil
	}

	out := strings.Join(lines, "\n")
	if trailingNewline || pubkeyChanged {
		out += "\n"
	}
	if err := os.WriteFile(path, []byte(out), shared.FilePermStandard); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	// EVALUATE
	pubState, pubValue := ScanDirective(lines, DirectivePubkeyAuth)
	passState, passValue := ScanDirective(lines, DirectivePasswordAuth)
	logger.Info("Daemon config hardened",
		zap.String("pubkey_state", pubState.String()),
		zap.String("pubkey_value", pubValue),
		zap.String("password_state", passState.String()),
		zap.String("password_value", passValue))

	if pubState != StateActive || pubValue != "yes" {
		return fmt.Errorf("PubkeyAuthentication not active after hardening (state %s)", pubState)
	}
	if passState == StateActive && passValue == "yes" {
		return fmt.Errorf("PasswordAuthentication still active after hardening")
	}
	return nil
}
