// cmd/inspect/ssh.go

package inspect

import (
	"fmt"
	"os"

	argus "github.com/CodeMonkeyCybersecurity/argus/pkg/argus_cli"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_io"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/hardening"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Report SSH hardening posture without changing anything",
	Long: `Reads the invoking user's ~/.ssh layout and the SSH daemon config and
reports directive states (absent, commented, active) and authorized_keys line
statistics. Nothing is modified.`,
	RunE: argus.Wrap(func(rc *argus_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		cfg, err := hardening.DefaultConfig()
		if err != nil {
			return err
		}
		if path := viper.GetString("ssh.sshd_config"); path != "" {
			cfg.SSHDConfigPath = path
		}
		if flag, _ := cmd.Flags().GetString("sshd-config"); flag != "" {
			cfg.SSHDConfigPath = flag
		}

		report, err := hardening.InspectSSH(rc, cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "SSH directory:      %v (mode %o)\n", report.SSHDirExists, report.SSHDirMode)
		fmt.Fprintf(os.Stdout, "authorized_keys:    %v (mode %o)\n", report.AuthorizedKeysExist, report.AuthorizedKeysMode)
		fmt.Fprintf(os.Stdout, "  key lines:        %d\n", report.KeyLines)
		fmt.Fprintf(os.Stdout, "  comment lines:    %d\n", report.CommentLines)
		fmt.Fprintf(os.Stdout, "  malformed lines:  %d\n", report.MalformedLines)
		fmt.Fprintf(os.Stdout, "PubkeyAuthentication:   %s %s\n", report.PubkeyState, report.PubkeyValue)
		fmt.Fprintf(os.Stdout, "PasswordAuthentication: %s %s\n", report.PasswordState, report.PasswordValue)
		fmt.Fprintf(os.Stdout, "Hardened: %v\n", report.Hardened())
		return nil
	}),
}

func init() {
	sshCmd.Flags().String("sshd-config", "", "path to the SSH daemon config (default /etc/ssh/sshd_config)")

	InspectCmd.AddCommand(sshCmd)
}
