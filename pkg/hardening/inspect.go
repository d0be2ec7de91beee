// pkg/hardening/inspect.go

package hardening

import (
	"fmt"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_io"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/sshdconfig"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/sshkeys"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/telemetry"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Report is a read-only snapshot of the host's SSH hardening posture.
type Report struct {
	SSHDirExists        bool
	SSHDirMode          os.FileMode
	AuthorizedKeysExist bool
	AuthorizedKeysMode  os.FileMode
	KeyLines            int
	CommentLines        int
	MalformedLines      int
	PubkeyState         sshdconfig.DirectiveState
	PubkeyValue         string
	PasswordState       sshdconfig.DirectiveState
	PasswordValue       string
}

// Hardened reports whether the daemon config is in the target state.
func (r *Report) Hardened() bool {
	if r.PubkeyState != sshdconfig.StateActive || r.PubkeyValue != "yes" {
		return false
	}
	return !(r.PasswordState == sshdconfig.StateActive && r.PasswordValue == "yes")
}

// InspectSSH gathers the hardening posture without mutating anything.
func InspectSSH(rc *argus_io.RuntimeContext, cfg Config) (*Report, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	ctx, span := telemetry.Start(rc.Ctx, "hardening.InspectSSH")
	defer span.End()

	logger := otelzap.Ctx(ctx)
	report := &Report{}

	if info, err := os.Stat(cfg.Paths.SSHDir); err == nil {
		report.SSHDirExists = true
		report.SSHDirMode = info.Mode().Perm()
	}

	if info, err := os.Stat(cfg.Paths.AuthorizedKeys); err == nil {
		report.AuthorizedKeysExist = true
		report.AuthorizedKeysMode = info.Mode().Perm()

		data, err := os.ReadFile(cfg.Paths.AuthorizedKeys)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", cfg.Paths.AuthorizedKeys, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			switch {
			case strings.TrimSpace(line) == "":
			case strings.HasPrefix(line, "#"):
				report.CommentLines++
			case sshkeys.IsValidKeyLine(line):
				report.KeyLines++
			default:
				report.MalformedLines++
			}
		}
	}

	data, err := os.ReadFile(cfg.SSHDConfigPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cfg.SSHDConfigPath, err)
	}
	lines := strings.Split(string(data), "\n")
	report.PubkeyState, report.PubkeyValue = sshdconfig.ScanDirective(lines, sshdconfig.DirectivePubkeyAuth)
	report.PasswordState, report.PasswordValue = sshdconfig.ScanDirective(lines, sshdconfig.DirectivePasswordAuth)

	logger.Info("SSH hardening posture",
		zap.Bool("ssh_dir", report.SSHDirExists),
		zap.String("ssh_dir_mode", fmt.Sprintf("%o", report.SSHDirMode)),
		zap.Bool("authorized_keys", report.AuthorizedKeysExist),
		zap.String("authorized_keys_mode", fmt.Sprintf("%o", report.AuthorizedKeysMode)),
		zap.Int("key_lines", report.KeyLines),
		zap.Int("comment_lines", report.CommentLines),
		zap.Int("malformed_lines", report.MalformedLines),
		zap.String("pubkey_auth", fmt.Sprintf("%s %s", report.PubkeyState, report.PubkeyValue)),
		zap.String("password_auth", fmt.Sprintf("%s %s", report.PasswordState, report.PasswordValue)),
		zap.Bool("hardened", report.Hardened()))

	return report, nil
}
