// pkg/telemetry/telemetry_test.go
package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsEnabled(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if IsEnabled() {
		t.Error("IsEnabled() = true without the opt-in marker")
	}

	markerDir := filepath.Join(home, ".argus")
	if err := os.MkdirAll(markerDir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(markerDir, "telemetry_on"), nil, 0600); err != nil {
		t.Fatal(err)
	}

	if !IsEnabled() {
		t.Error("IsEnabled() = false with the opt-in marker present")
	}
}

func TestAnonTelemetryID(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	id := AnonTelemetryID()
	if !strings.HasPrefix(id, "anon-") {
		t.Errorf("AnonTelemetryID() = %q, want anon- prefix", id)
	}

	// The id is persisted, so repeated calls return the same value
	if again := AnonTelemetryID(); again != id {
		t.Errorf("AnonTelemetryID() not stable: %q then %q", id, again)
	}
}

func TestAnonTelemetryIDDistinctPerInstall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	first := AnonTelemetryID()

	t.Setenv("HOME", t.TempDir())
	second := AnonTelemetryID()

	if first == second {
		t.Error("AnonTelemetryID() returned the same id for two separate installs")
	}
}
