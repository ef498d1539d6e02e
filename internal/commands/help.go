package commands

import (
	"fmt"
	"io"
)

// WriteHelp writes one line per registered command: usage, then synopsis.
func WriteHelp(w io.Writer, r *Registry) {
	for _, cmd := range r.All() {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Usage(), cmd.Synopsis())
	}
}
