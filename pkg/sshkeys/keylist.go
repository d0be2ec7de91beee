// pkg/sshkeys/keylist.go

package sshkeys

import (
	"context"
	"fmt"
	"strings"

	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_err"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/argus_io"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/verify"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// KeyList is the YAML shape of a key-list file:
//
//	keys:
//	  - ssh-ed25519 AAAA... ops@example
type KeyList struct {
	Keys []string `yaml:"keys" validate:"required,min=1,dive,required"`
}

// LoadKeyList reads a YAML key-list file and validates that every entry looks
// like a public key line, so the insertion step never plants a line the
// sanitation step would immediately disable.
func LoadKeyList(ctx context.Context, path string) ([]string, error) {
	logger := otelzap.Ctx(ctx)

	var list KeyList
	if err := argus_io.ReadYAML(ctx, path, &list); err != nil {
		return nil, err
	}

	if err := verify.Struct(&list); err != nil {
		return nil, argus_err.NewValidationError(
			fmt.Sprintf("key-list file %s failed validation: %v", path, err),
			"Provide at least one non-empty entry under the top-level 'keys' list",
		)
	}

	keys := make([]string, 0, len(list.Keys))
	for i, key := range list.Keys {
		key = strings.TrimRight(key, "\r\n")
		if !IsValidKeyLine(key) || strings.HasPrefix(key, "#") || strings.TrimSpace(key) == "" {
			return nil, cerr.Newf("key %d in %s does not look like a public key line", i+1, path)
		}
		keys = append(keys, key)
	}

	logger.Info("Loaded key list", zap.String("path", path), zap.Int("keys", len(keys)))
	return keys, nil
}
