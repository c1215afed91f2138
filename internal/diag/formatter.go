package diag

import (
	"fmt"
	"strings"
)

// Format renders a diagnostic as a single line suitable for stderr.
func Format(d Diagnostic) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s[%s]: %s", d.Stage, d.Severity, d.Code, d.Message)
	if d.Span.IsValid() {
		fmt.Fprintf(&sb, " at %s", d.Span)
	}
	return sb.String()
}

// FormatAll renders a batch of diagnostics, one per line.
func FormatAll(ds []Diagnostic) string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = Format(d)
	}
	return strings.Join(lines, "\n")
}
