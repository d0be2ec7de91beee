// cmd/secure/secure.go

package secure

import (
	argus "github.com/CodeMonkeyCybersecurity/argus/pkg/argus_cli"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_io"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// SecureCmd groups the hardening subcommands.
var SecureCmd = &cobra.Command{
	Use:     "secure",
	Aliases: []string{"harden"},
	Short:   "Harden host components",
	Long: `Secure commands apply hardening to host components.
For example:
	argus secure ssh  - Hardens SSH access on this host.`,

	RunE: argus.Wrap(func(rc *argus_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		otelzap.Ctx(rc.Ctx).Info("No subcommand provided for secure")
		return cmd.Help()
	}),
}
