// pkg/sshkeys/bootstrap.go

package sshkeys

import (
	"context"
	"fmt"
	"os"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/shared"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// EnsureKeyFiles makes sure the .ssh directory (0700) and authorized_keys file
// (0600) exist. Permissions on existing entries are tightened to the expected
// modes. Any failure is returned so the run aborts loudly instead of carrying
// on against a half-built layout.
func EnsureKeyFiles(ctx context.Context, p Paths) error {
	logger := otelzap.Ctx(ctx)

	// ASSESS
	logger.Info("Assessing SSH key file layout",
		zap.String("ssh_dir", p.SSHDir),
		zap.String("authorized_keys", p.AuthorizedKeys))

	// INTERVENE - directory first, then the key file inside it
	info, err := os.Stat(p.SSHDir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(p.SSHDir, shared.FilePermOwnerRWX); err != nil {
			logger.Error("Failed to create .ssh directory", zap.Error(err))
			return fmt.Errorf("create %s: %w", p.SSHDir, err)
		}
		logger.Info("Created .ssh directory", zap.String("path", p.SSHDir))
	case err != nil:
		return fmt.Errorf("stat %s: %w", p.SSHDir, err)
	case info.Mode().Perm() != shared.FilePermOwnerRWX:
		logger.Warn("Fixing .ssh directory permissions",
			zap.String("current", fmt.Sprintf("%o", info.Mode().Perm())),
			zap.String("expected", "700"))
		if err := os.Chmod(p.SSHDir, shared.FilePermOwnerRWX); err != nil {
			return fmt.Errorf("chmod %s: %w", p.SSHDir, err)
		}
	}

	info, err = os.Stat(p.AuthorizedKeys)
	switch {
	case os.IsNotExist(err):
		file, err := os.OpenFile(p.AuthorizedKeys, os.O_CREATE|os.O_WRONLY, shared.FilePermOwnerReadWrite)
		if err != nil {
			logger.Error("Failed to create authorized_keys", zap.Error(err))
			return fmt.Errorf("create %s: %w", p.AuthorizedKeys, err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("close %s: %w", p.AuthorizedKeys, err)
		}
		logger.Info("Created authorized_keys", zap.String("path", p.AuthorizedKeys))
	case err != nil:
		return fmt.Errorf("stat %s: %w", p.AuthorizedKeys, err)
	case info.Mode().Perm() != shared.FilePermOwnerReadWrite:
		logger.Warn("Fixing authorized_keys permissions",
			zap.String("current", fmt.Sprintf("%o", info.Mode().Perm())),
			zap.String("expected", "600"))
		if err := os.Chmod(p.AuthorizedKeys, shared.FilePermOwnerReadWrite); err != nil {
			return fmt.Errorf("chmod %s: %w", p.AuthorizedKeys, err)
		}
	}

	// EVALUATE
	logger.Info("SSH key file layout verified")
	return nil
}
