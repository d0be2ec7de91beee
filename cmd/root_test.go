// cmd/root_test.go

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDaemonConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sshd_config")
	require.NoError(t, os.WriteFile(path,
		[]byte("Port 22\nPasswordAuthentication yes\n"), 0644))
	return path
}

func TestDebugFlagReachesErrorHandling(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	defer argus_err.SetDebugMode(false)

	RegisterCommands()
	RootCmd.SetArgs([]string{"inspect", "ssh", "--sshd-config", writeDaemonConfig(t), "--debug"})
	require.NoError(t, RootCmd.Execute())

	// The flag is read after parsing, so the parsed value must be visible now
	assert.True(t, argus_err.DebugEnabled(),
		"--debug on the command line must enable debug mode")
}

func TestDebugFlagDefaultsOff(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	defer argus_err.SetDebugMode(false)

	RegisterCommands()
	// Flag values survive between Execute calls in-process
	require.NoError(t, RootCmd.PersistentFlags().Set("debug", "false"))
	RootCmd.SetArgs([]string{"inspect", "ssh", "--sshd-config", writeDaemonConfig(t)})
	require.NoError(t, RootCmd.Execute())

	assert.False(t, argus_err.DebugEnabled())
}

func TestSecureSSHDryRunChangesNothing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	sshdPath := writeDaemonConfig(t)
	before, err := os.ReadFile(sshdPath)
	require.NoError(t, err)

	RegisterCommands()
	RootCmd.SetArgs([]string{"secure", "ssh", "--dry-run", "--sshd-config", sshdPath})
	require.NoError(t, RootCmd.Execute())

	after, err := os.ReadFile(sshdPath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "dry run must not edit the daemon config")
	assert.NoDirExists(t, filepath.Join(home, ".ssh"), "dry run must not create key files")
}
