// pkg/sshkeys/paths.go

package sshkeys

import (
	"os"
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/shared"
	cerr "github.com/cockroachdb/errors"
)

// Paths holds the per-user key file locations a hardening run operates on.
type Paths struct {
	SSHDir         string `validate:"required"`
	AuthorizedKeys string `validate:"required"`
	Backup         string `validate:"required"`
}

// DefaultPaths resolves the invoking user's ~/.ssh locations.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, cerr.Wrap(err, "failed to resolve home directory")
	}
	return PathsIn(home), nil
}

// PathsIn builds key file locations under the given home directory.
func PathsIn(home string) Paths {
	sshDir := filepath.Join(home, shared.SSHDirName)
	authKeys := filepath.Join(sshDir, shared.AuthorizedKeysName)
	return Paths{
		SSHDir:         sshDir,
		AuthorizedKeys: authKeys,
		Backup:         authKeys + shared.BackupSuffix,
	}
}
