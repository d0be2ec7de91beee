// pkg/sshkeys/insert.go

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

// EnsureKey appends a key line to authorized_keys unless the exact string
// already occurs anywhere in the file. The match is substring-based, not
// line-based: near-duplicates differing in trailing whitespace or comment are
// not detected. That is a documented limitation carried over deliberately.
// Returns true if the key was appended.
func EnsureKey(ctx context.Context, path, key string) (bool, error) {
	logger := otelzap.Ctx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if strings.Contains(string(data), key) {
		logger.Debug("Key already present, skipping", zap.String("key", keyLabel(key)))
		return false, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, shared.FilePermOwnerReadWrite)
	if err != nil {
		return false, fmt.Errorf("open %s for append: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close authorized_keys", zap.Error(closeErr))
		}
	}()

	entry := key + "\n"
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		entry = "\n" + entry
	}
	if _, err := file.WriteString(entry); err != nil {
		return false, fmt.Errorf("append to %s: %w", path, err)
	}

	logger.Info("Appended key to authorized_keys", zap.String("key", keyLabel(key)))
	return true, nil
}

// EnsureKeys inserts each key from the list, in order, returning how many were
// actually appended. Duplicates within the list are not deduplicated against
// each other, only against the file content at the time each is checked.
func EnsureKeys(ctx context.Context, path string, keys []string) (int, error) {
	logger := otelzap.Ctx(ctx)
	logger.Info("Ensuring authorized keys are present",
		zap.String("path", path),
		zap.Int("keys", len(keys)))

	appended := 0
	for _, key := range keys {
		added, err := EnsureKey(ctx, path, key)
		if err != nil {
			return appended, err
		}
		if added {
			appended++
		}
	}

	logger.Info("Key insertion complete",
		zap.Int("appended", appended),
		zap.Int("already_present", len(keys)-appended))
	return appended, nil
}

// keyLabel trims a key line down to something loggable: the type and the
// trailing comment, never the full blob.
func keyLabel(key string) string {
	fields := strings.Fields(key)
	switch len(fields) {
	case 0:
		return ""
	case 1, 2:
		return fields[0]
	default:
		return fields[0] + " " + strings.Join(fields[2:], " ")
	}
}
