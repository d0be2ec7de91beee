// pkg/argus_cli/wrap_test.go

package argus_cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_err"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_io"
	"github.com/spf13/cobra"
)

func TestWrapRecoversPanic(t *testing.T) {
	runE := Wrap(func(rc *argus_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		panic("boom")
	})

	err := runE(&cobra.Command{Use: "panicky"}, nil)
	if err == nil {
		t.Fatal("Wrap() swallowed a panic")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Wrap() error = %q, want panic value in message", err)
	}
}

func TestWrapPreservesExpectedErrors(t *testing.T) {
	cause := errors.New("restart manually")
	runE := Wrap(func(rc *argus_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return argus_err.NewExpectedError(rc.Ctx, cause)
	})

	err := runE(&cobra.Command{Use: "notice"}, nil)
	if !argus_err.IsExpectedUserError(err) {
		t.Errorf("Wrap() lost the expected-error marker: %v", err)
	}
}

func TestWrapNilError(t *testing.T) {
	runE := Wrap(func(rc *argus_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return nil
	})

	if err := runE(&cobra.Command{Use: "ok"}, nil); err != nil {
		t.Errorf("Wrap() error = %v, want nil", err)
	}
}
