// cmd/inspect/inspect.go

package inspect

import (
	argus "github.com/CodeMonkeyCybersecurity/argus/pkg/argus_cli"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_io"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// InspectCmd groups the read-only reporting subcommands.
var InspectCmd = &cobra.Command{
	Use:     "inspect",
	Aliases: []string{"read"},
	Short:   "Inspect host hardening posture",

	RunE: argus.Wrap(func(rc *argus_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		otelzap.Ctx(rc.Ctx).Info("No subcommand provided for inspect")
		return cmd.Help()
	}),
}
