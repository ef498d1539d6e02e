package commands

import "strings"

// Parse parses one input line using the default registry.
func Parse(line string) (Action, error) {
	return ParseWith(DefaultRegistry, line)
}

// ParseWith parses one input line against the given registry.
//
// The line is split on whitespace. The first token selects the command and
// the rest are handed to it. An empty line or an unregistered word yields an
// Unknown action, not an error.
func ParseWith(r *Registry, line string) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Unknown(""), nil
	}

	cmd, ok := r.Find(fields[0])
	if !ok {
		return Unknown(fields[0]), nil
	}
	return cmd.Parse(fields[1:])
}
