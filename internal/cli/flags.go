package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value restricted to a fixed set of strings.
// Invalid values fail at flag-parse time with the allowed set in the
// message, instead of surfacing later as a validation error.
type enumValue struct {
	value   *string
	allowed []string
}

func newEnumValue(p *string, allowed ...string) *enumValue {
	return &enumValue{value: p, allowed: allowed}
}

func (e *enumValue) String() string { return *e.value }

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range e.allowed {
		if s == a {
			*e.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(e.allowed, ", "))
}

func (e *enumValue) Type() string { return "string" }

// addEnumFlag registers an enum-restricted string flag.
func addEnumFlag(fs *pflag.FlagSet, p *string, name, usage string, allowed ...string) {
	fs.Var(newEnumValue(p, allowed...), name, usage)
}
