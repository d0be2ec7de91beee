// pkg/sshdconfig/directive.go

package sshdconfig

import "strings"

// Directive names this package drives.
const (
	DirectivePubkeyAuth   = "PubkeyAuthentication"
	DirectivePasswordAuth = "PasswordAuthentication"
)

// DirectiveState is the per-directive state of a daemon config file. A
// directive is either absent, present only behind comment markers, or active.
type DirectiveState int

const (
	StateAbsent DirectiveState = iota
	StateCommented
	StateActive
)

func (s DirectiveState) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateCommented:
		return "commented"
	case StateActive:
		return "active"
	default:
		return "invalid"
	}
}

// parsedLine is one config line classified against a directive name.
type parsedLine struct {
	name      string
	value     string
	commented bool
	matched   bool
}

// parseLine classifies a single sshd_config line. Comment markers may be
// followed by optional whitespace before the directive name; the name match
// is exact, values keep their original spelling.
func parseLine(line string) parsedLine {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return parsedLine{}
	}

	commented := false
	if strings.HasPrefix(trimmed, "#") {
		commented = true
		trimmed = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		if trimmed == "" {
			return parsedLine{}
		}
	}

	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return parsedLine{}
	}

	return parsedLine{
		name:      fields[0],
		value:     strings.Join(fields[1:], " "),
		commented: commented,
		matched:   true,
	}
}

// Mentions reports whether the line names the directive at all, active or
// commented out.
func Mentions(line, directive string) bool {
	p := parseLine(line)
	return p.matched && p.name == directive
}

// IsActive reports whether the line is an in-effect `directive value` line.
func IsActive(line, directive, value string) bool {
	p := parseLine(line)
	return p.matched && !p.commented && p.name == directive && p.value == value
}

// IsCommented reports whether the line is a commented-out `directive value` line.
func IsCommented(line, directive, value string) bool {
	p := parseLine(line)
	return p.matched && p.commented && p.name == directive && p.value == value
}

// ScanDirective reduces a config file to the directive's state plus the value
// of the first active occurrence, if any. Active occurrences win over
// commented ones regardless of ordering.
func ScanDirective(lines []string, directive string) (DirectiveState, string) {
	state := StateAbsent
	for _, line := range lines {
		p := parseLine(line)
		if !p.matched || p.name != directive {
			continue
		}
		if !p.commented {
			return StateActive, p.value
		}
		state = StateCommented
	}
	return state, ""
}
