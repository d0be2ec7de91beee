// pkg/sshkeys/sanitize.go

package sshkeys

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/shared"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// validKeyPrefixes are the key types recognized during sanitation. The whole
// line is the unit of comparison; no parsing into algorithm/blob/comment fields.
var validKeyPrefixes = []string{
	"ssh-rsa",
	"ssh-dsa",
	"ssh-ecdsa",
	"ssh-ed25519",
}

// IsValidKeyLine reports whether an authorized_keys line survives sanitation
// unchanged: blank lines, comments, and lines starting with a recognized key
// type all pass.
func IsValidKeyLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	if strings.HasPrefix(line, "#") {
		return true
	}
	for _, prefix := range validKeyPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// SanitizeLine disables a malformed line by commenting it out and appending
// the marker comment. Valid lines come back untouched.
func SanitizeLine(line string) (string, bool) {
	if IsValidKeyLine(line) {
		return line, false
	}
	return "#" + line + " " + shared.InvalidKeyMarker, true
}

// Sanitize backs up authorized_keys and rewrites it, commenting out lines
// that do not look like a key. A missing file is not an error: the step is
// skipped with a log message. Re-running on already-sanitized output is a
// no-op, since every line is then either commented or valid.
func Sanitize(ctx context.Context, p Paths) error {
	logger := otelzap.Ctx(ctx)

	// ASSESS
	data, err := os.ReadFile(p.AuthorizedKeys)
	if os.IsNotExist(err) {
		logger.Info("authorized_keys not found, sanitation skipped",
			zap.String("path", p.AuthorizedKeys))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", p.AuthorizedKeys, err)
	}

	// Backup before any rewrite; overwritten on every run, operator recovery only.
	if err := os.WriteFile(p.Backup, data, shared.FilePermOwnerReadWrite); err != nil {
		logger.Error("Failed to write backup", zap.String("path", p.Backup), zap.Error(err))
		return fmt.Errorf("backup %s: %w", p.Backup, err)
	}
	logger.Info("Backed up authorized_keys", zap.String("backup", p.Backup))

	// INTERVENE - rewrite line by line, order preserved
	lines := strings.Split(string(data), "\n")
	disabled := 0
	for i, line := range lines {
		sanitized, changed := SanitizeLine(line)
		if changed {
			logger.Warn("Disabling malformed authorized_keys entry",
				zap.Int("line", i+1))
			lines[i] = sanitized
			disabled++
		}
	}

	if disabled == 0 {
		logger.Info("authorized_keys already sanitized, nothing to do")
		return nil
	}

	if err := os.WriteFile(p.AuthorizedKeys, []byte(strings.Join(lines, "\n")), shared.FilePermOwnerReadWrite); err != nil {
		return fmt.Errorf("rewrite %s: %w", p.AuthorizedKeys, err)
	}

	// EVALUATE
	logger.Info("authorized_keys sanitized",
		zap.Int("lines_disabled", disabled),
		zap.Int("lines_total", len(lines)))
	return nil
}
