// cmd/root.go

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/CodeMonkeyCybersecurity/argus/cmd/inspect"
	"github.com/CodeMonkeyCybersecurity/argus/cmd/secure"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_err"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// RootCmd is the base command for argus.
var RootCmd = &cobra.Command{
	Use:   "argus",
	Short: "Argus CLI for single-host SSH access hardening",
	Long: `Argus hardens SSH access on a single host: it fixes ~/.ssh permissions,
sanitizes authorized_keys, inserts a configured set of public keys, and edits
the SSH daemon configuration to require key-based authentication.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Runs after flag parsing, so the parsed --debug value is visible here.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, err := cmd.Flags().GetBool("debug"); err == nil {
			argus_err.SetDebugMode(debug)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().Bool("debug", false, "enable verbose error output")
}

// initConfig wires up viper: /etc/argus/argus.yaml first, then the user config
// directory. A missing config file is fine, defaults apply.
func initConfig() {
	viper.SetConfigName("argus")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(shared.ArgusConfigDir)
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "argus"))
	}

	viper.SetDefault("ssh.sshd_config", shared.SSHDConfigPath)
	viper.SetDefault("ssh.restart", true)

	if err := viper.ReadInConfig(); err == nil {
		logger.GetLogger().Debug("Config file loaded",
			zap.String("path", viper.ConfigFileUsed()))
	}
}

var registerOnce sync.Once

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	registerOnce.Do(func() {
		for _, subCmd := range []*cobra.Command{
			secure.SecureCmd,
			inspect.InspectCmd,
		} {
			RootCmd.AddCommand(subCmd)
		}
	})
}

// Execute initializes and runs the root command, mapping errors to exit codes.
func Execute() {
	defer shared.SafeSync()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if argus_err.IsExpectedUserError(err) {
			logger.GetLogger().Warn("CLI completed with user-actionable notice", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Notice: %v\n", err)
			os.Exit(0)
		}
		logger.GetLogger().Error("CLI failed", zap.Error(err))
		if argus_err.DebugEnabled() {
			// cockroachdb/errors renders the full stack through %+v
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(argus_err.GetExitCode(err))
	}
}
