// pkg/logger/paths.go

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/shared"
)

// PlatformLogPaths returns fallback log paths in order of priority for the platform.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "linux":
		return []string{
			shared.ArgusLogs, // best if writable (root or argus user)
			userStatePath("argus.log"),
			shared.ArgusLogsPWD,
			"/tmp/argus/argus.log",
		}
	case "darwin":
		return []string{
			userStatePath("argus.log"),
			shared.ArgusLogsPWD,
			"/tmp/argus/argus.log",
		}
	default:
		return []string{shared.ArgusLogsPWD}
	}
}

// FindWritableLogPath returns the first usable log path.
func FindWritableLogPath() (string, error) {
	for _, path := range PlatformLogPaths() {
		if _, err := GetLogFileWriter(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no writable log path found")
}

// userStatePath resolves ~/.local/state/argus/<name> per the XDG state convention.
func userStatePath(name string) string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "argus", name)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "argus", name)
	}
	return filepath.Join(home, ".local", "state", "argus", name)
}
