// pkg/hardening/ssh.go

package hardening

import (
	"fmt"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_err"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_io"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_unix"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/sshdconfig"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/sshkeys"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/telemetry"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/verify"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Config carries everything a hardening run needs. Start from DefaultConfig,
// which resolves the invoking user's home directory, the built-in key list,
// and the system daemon config path.
type Config struct {
	Paths          sshkeys.Paths `validate:"required"`
	Keys           []string      `validate:"dive,required"`
	SSHDConfigPath string        `validate:"required"`
	Restart        bool
}

// validateConfig runs the struct tags and maps failures to a validation error
// so a bad configuration exits with the validation code before any file edit.
func validateConfig(cfg Config) error {
	if err := verify.Struct(cfg); err != nil {
		return argus_err.NewValidationError(
			fmt.Sprintf("invalid hardening configuration: %v", err),
			"Check the ssh.* config keys and command flags; paths must not be empty",
		)
	}
	return nil
}

// DefaultConfig resolves a Config for the invoking user with the built-in keys.
func DefaultConfig() (Config, error) {
	paths, err := sshkeys.DefaultPaths()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Paths:          paths,
		Keys:           DefaultAuthorizedKeys,
		SSHDConfigPath: shared.SSHDConfigPath,
		Restart:        true,
	}, nil
}

// HardenSSH runs the four-step pipeline: key file bootstrap, authorized_keys
// sanitation, key insertion, then daemon hardening with a restart. Steps run
// strictly in order; the first failure aborts the run. A failed or unavailable
// restart is reported but never rolls back the config edits already made.
func HardenSSH(rc *argus_io.RuntimeContext, cfg Config) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	ctx, span := telemetry.Start(rc.Ctx, "hardening.HardenSSH")
	defer span.End()

	logger := otelzap.Ctx(ctx)
	logger.Info("Starting SSH hardening",
		zap.String("authorized_keys", cfg.Paths.AuthorizedKeys),
		zap.String("sshd_config", cfg.SSHDConfigPath),
		zap.Int("keys", len(cfg.Keys)),
		zap.Bool("restart", cfg.Restart))

	// Step 1 - directory/file bootstrap
	if err := sshkeys.EnsureKeyFiles(ctx, cfg.Paths); err != nil {
		return err
	}

	// Step 2 - key-file sanitation
	if err := sshkeys.Sanitize(ctx, cfg.Paths); err != nil {
		return err
	}

	// Step 3 - key insertion
	if _, err := sshkeys.EnsureKeys(ctx, cfg.Paths.AuthorizedKeys, cfg.Keys); err != nil {
		return err
	}

	// Step 4 - daemon hardening and restart
	if err := sshdconfig.Harden(ctx, cfg.SSHDConfigPath); err != nil {
		return err
	}

	if !cfg.Restart {
		logger.Info("Daemon restart skipped by configuration")
		return nil
	}
	if err := argus_unix.RestartSSHDaemon(ctx); err != nil {
		// Expected errors surface as warnings to the operator; config edits stand.
		return err
	}

	logger.Info("SSH hardening complete")
	return nil
}
