// pkg/execute/execute_test.go

package execute

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunCapturesOutput(t *testing.T) {
	output, err := Run(context.Background(), Options{
		Command: "echo",
		Args:    []string{"hello"},
		Capture: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(output) != "hello" {
		t.Errorf("Run() output = %q, want %q", output, "hello")
	}
}

func TestRunWithoutCaptureDiscardsOutput(t *testing.T) {
	output, err := Run(context.Background(), Options{
		Command: "echo",
		Args:    []string{"hello"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if output != "" {
		t.Errorf("Run() output = %q, want empty", output)
	}
}

func TestRunDryRunSkipsExecution(t *testing.T) {
	output, err := Run(context.Background(), Options{
		Command: "false",
		DryRun:  true,
		Capture: true,
	})
	if err != nil {
		t.Fatalf("Run() in dry-run mode returned error: %v", err)
	}
	if output != "" {
		t.Errorf("Run() in dry-run mode produced output %q", output)
	}
}

func TestRunFailureWrapsError(t *testing.T) {
	output, err := Run(context.Background(), Options{
		Command: "ls",
		Args:    []string{"/definitely/not/a/path"},
		Capture: true,
	})
	if err == nil {
		t.Fatal("Run() on a failing command returned nil error")
	}
	if !strings.Contains(err.Error(), "failed after 1 attempts") {
		t.Errorf("Run() error = %q, want attempt count in message", err)
	}
	if output == "" {
		t.Error("Run() should return captured output on failure")
	}
}

func TestRunRetries(t *testing.T) {
	start := time.Now()
	_, err := Run(context.Background(), Options{
		Command: "false",
		Retries: 3,
		Delay:   10 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("Run() with always-failing command returned nil error")
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("Run() error = %q, want 3 attempts", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Run() finished in %v, retries did not wait", elapsed)
	}
}

func TestBuildCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
		want string
	}{
		{"no args", "systemctl", nil, "systemctl"},
		{"with args", "systemctl", []string{"restart", "sshd"}, "systemctl restart sshd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildCommandString(tt.cmd, tt.args...); got != tt.want {
				t.Errorf("buildCommandString() = %q, want %q", got, tt.want)
			}
		})
	}
}
