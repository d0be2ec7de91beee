// pkg/shared/constants.go

package shared

const (
	SSHDConfigPath     = "/etc/ssh/sshd_config"
	SSHDirName         = ".ssh"
	AuthorizedKeysName = "authorized_keys"
	BackupSuffix       = ".bak"

	ArgusConfigDir = "/etc/argus"
	ArgusLogDir    = "/var/log/argus/"
	ArgusLogs      = ArgusLogDir + "argus.log"
	ArgusLogsPWD   = "./argus.log"
)

// InvalidKeyMarker is appended to authorized_keys lines that are commented
// out during sanitation, so an operator can find and review them later.
const InvalidKeyMarker = "# Invalid Key Format by script"

const (
	// Permission modes (in octal)
	DirPermStandard        = 0755
	FilePermOwnerRWX       = 0700
	FilePermStandard       = 0644
	FilePermOwnerReadWrite = 0600
)

const Version = "0.3.0"
