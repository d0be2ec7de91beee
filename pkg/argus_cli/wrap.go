// pkg/argus_cli/wrap.go

package argus_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_err"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_io"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/logger"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Wrap adapts a RuntimeContext handler into a cobra RunE, ensuring panic
// recovery, telemetry, and logging around every command.
func Wrap(fn func(rc *argus_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.GetLogger()

		rc := argus_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		if err != nil && !argus_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
