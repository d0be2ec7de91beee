package argus_err

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestSetDebugMode(t *testing.T) {
	originalDebug := debugMode
	defer func() { debugMode = originalDebug }()

	SetDebugMode(true)
	if !DebugEnabled() {
		t.Error("Debug mode should be enabled")
	}

	SetDebugMode(false)
	if DebugEnabled() {
		t.Error("Debug mode should be disabled")
	}
}

func TestNewExpectedError(t *testing.T) {
	ctx := context.Background()

	if err := NewExpectedError(ctx, nil); err != nil {
		t.Error("NewExpectedError(nil) should return nil")
	}

	base := errors.New("manual restart required")
	wrapped := NewExpectedError(ctx, base)
	if wrapped == nil {
		t.Fatal("NewExpectedError should not return nil for a real error")
	}
	if wrapped.Error() != base.Error() {
		t.Errorf("message changed: %q != %q", wrapped.Error(), base.Error())
	}
	if !IsExpectedUserError(wrapped) {
		t.Error("wrapped error should be expected")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the cause")
	}
}

func TestIsExpectedUserError(t *testing.T) {
	ctx := context.Background()

	if IsExpectedUserError(nil) {
		t.Error("nil is not an expected user error")
	}
	if IsExpectedUserError(errors.New("plain")) {
		t.Error("plain errors are not expected user errors")
	}

	// Marker survives further wrapping
	inner := NewExpectedError(ctx, errors.New("inner"))
	outer := fmt.Errorf("context: %w", inner)
	if !IsExpectedUserError(outer) {
		t.Error("expected-error marker should survive wrapping")
	}
}

func TestExtractSummary(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		output        string
		maxCandidates int
		want          string
	}{
		{
			name:          "empty output",
			output:        "",
			maxCandidates: 3,
			want:          "No output provided.",
		},
		{
			name:          "whitespace only",
			output:        "   \n\n   ",
			maxCandidates: 3,
			want:          "No output provided.",
		},
		{
			name:          "single error line",
			output:        "Error: connection refused",
			maxCandidates: 3,
			want:          "Error: connection refused",
		},
		{
			name:          "multiple error lines capped",
			output:        "Error 1\nError 2\nError 3\nError 4",
			maxCandidates: 2,
			want:          "Error 1 - Error 2",
		},
		{
			name:          "no error keywords falls back to first line",
			output:        "Operation successful\nAll checks passed",
			maxCandidates: 3,
			want:          "Operation successful",
		},
		{
			name:          "failed keyword",
			output:        "restarting unit\nJob for sshd.service failed",
			maxCandidates: 3,
			want:          "Job for sshd.service failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSummary(ctx, tt.output, tt.maxCandidates)
			if got != tt.want {
				t.Errorf("ExtractSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
