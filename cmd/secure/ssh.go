// cmd/secure/ssh.go

package secure

import (
	argus "github.com/CodeMonkeyCybersecurity/argus/pkg/argus_cli"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_io"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/hardening"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/sshkeys"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Harden SSH access on this host",
	Long: `Hardens SSH access for the invoking user and this host's SSH daemon:

1. Ensures ~/.ssh exists with mode 700 and authorized_keys with mode 600.
2. Backs up authorized_keys, then comments out lines that do not look like a key.
3. Appends each configured public key that is not already present.
4. Forces PubkeyAuthentication yes and PasswordAuthentication no in the daemon
   config, then restarts the daemon.

The key list comes from --keys-file (or ssh.keys_file in the config file); the
built-in list is used otherwise. Editing the daemon config requires root; the
command aborts before touching it when the config path is not writable.

USAGE EXAMPLES:
• sudo argus secure ssh                          # full hardening with built-in keys
• sudo argus secure ssh --keys-file keys.yaml    # operator-supplied key list
• sudo argus secure ssh --no-restart             # leave the daemon running as-is
• argus secure ssh --dry-run                     # report current state, change nothing`,
	RunE: argus.Wrap(func(rc *argus_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		logger := otelzap.Ctx(rc.Ctx)

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

		cfg.Restart = viper.GetBool("ssh.restart")
		if noRestart, _ := cmd.Flags().GetBool("no-restart"); noRestart {
			cfg.Restart = false
		}

		keysFile, _ := cmd.Flags().GetString("keys-file")
		if keysFile == "" {
			keysFile = viper.GetString("ssh.keys_file")
		}
		if keysFile != "" {
			keys, err := sshkeys.LoadKeyList(rc.Ctx, keysFile)
			if err != nil {
				return err
			}
			cfg.Keys = keys
		}

		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			logger.Info("Dry run: reporting current state, nothing will be modified")
			_, err := hardening.InspectSSH(rc, cfg)
			return err
		}

		logger.Info("Hardening SSH access",
			zap.String("sshd_config", cfg.SSHDConfigPath),
			zap.Int("keys", len(cfg.Keys)))
		return hardening.HardenSSH(rc, cfg)
	}),
}

func init() {
	sshCmd.Flags().String("keys-file", "", "YAML file with the public keys to insert")
	sshCmd.Flags().String("sshd-config", "", "path to the SSH daemon config (default /etc/ssh/sshd_config)")
	sshCmd.Flags().Bool("no-restart", false, "skip the SSH daemon restart")
	sshCmd.Flags().Bool("dry-run", false, "report the current hardening posture instead of changing anything")

	SecureCmd.AddCommand(sshCmd)
}
