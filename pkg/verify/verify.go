// pkg/verify/verify.go

package verify

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// One validator instance is fine for pure struct validation; it caches
// per-type metadata internally.
var validate = validator.New()

// Struct validates `validate:` tags on v.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return cerr.Wrap(err, "struct validation")
	}
	return nil
}
