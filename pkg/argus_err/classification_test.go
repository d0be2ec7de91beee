package argus_err

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestClassifiedErrorExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		category ErrorCategory
		want     int
	}{
		{"system", CategorySystem, 1},
		{"validation", CategoryValidation, 2},
		{"user cancelled", CategoryUser, 130},
		{"internal", CategoryInternal, 3},
		{"dependency", CategoryDependency, 1},
		{"permission", CategoryPermission, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ClassifiedError{Category: tt.category, Message: "boom"}
			if got := err.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	if got := GetExitCode(nil); got != 0 {
		t.Errorf("GetExitCode(nil) = %d, want 0", got)
	}
	if got := GetExitCode(errors.New("plain")); got != 1 {
		t.Errorf("GetExitCode(plain) = %d, want 1", got)
	}
	if got := GetExitCode(NewValidationError("bad input")); got != 2 {
		t.Errorf("GetExitCode(validation) = %d, want 2", got)
	}

	// Expected user errors don't fail the program
	expected := NewExpectedError(context.Background(), errors.New("manual step needed"))
	if got := GetExitCode(expected); got != 0 {
		t.Errorf("GetExitCode(expected) = %d, want 0", got)
	}
}

func TestPermissionErrorMessage(t *testing.T) {
	err := NewPermissionError("/etc/ssh/sshd_config", "write", "Re-run with sudo")

	msg := err.Error()
	if !strings.Contains(msg, "Permission denied") {
		t.Errorf("message missing category text: %q", msg)
	}
	if !strings.Contains(msg, "/etc/ssh/sshd_config") {
		t.Errorf("message missing resource: %q", msg)
	}
	if !strings.Contains(msg, "How to fix:") || !strings.Contains(msg, "Re-run with sudo") {
		t.Errorf("message missing remediation: %q", msg)
	}

	var classified *ClassifiedError
	if !errors.As(err, &classified) {
		t.Fatal("should unwrap to ClassifiedError")
	}
	if classified.Category != CategoryPermission {
		t.Errorf("category = %v, want CategoryPermission", classified.Category)
	}
}

func TestFilesystemErrorUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := NewFilesystemError("write failed", cause)
	if !errors.Is(err, cause) {
		t.Error("filesystem error should unwrap to its cause")
	}
}
