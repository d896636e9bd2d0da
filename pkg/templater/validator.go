package templater

import (
	"fmt"
	"strings"
)

// Validate runs a cheap advisory lint over a template before it is saved:
// net brace balance and conditional tag counts. Findings are human-readable
// strings for the editing UI; they never block a render, which proceeds
// best-effort regardless. Interleaved or overlapping tags are not detected —
// an accepted limitation of the counting approach.
func Validate(template string) []string {
	var findings []string

	opens := strings.Count(template, "{")
	closes := strings.Count(template, "}")
	switch {
	case opens > closes:
		findings = append(findings, fmt.Sprintf("Unmatched opening brace: %d more %q than %q", opens-closes, "{", "}"))
	case closes > opens:
		findings = append(findings, fmt.Sprintf("Unmatched closing brace: %d more %q than %q", closes-opens, "}", "{"))
	}

	if o, c := strings.Count(template, ifOpen), strings.Count(template, ifClose); o != c {
		findings = append(findings, fmt.Sprintf("Mismatched conditional: %d %s tag(s) vs %d %s tag(s)", o, "{if:}", c, ifClose))
	}
	if o, c := strings.Count(template, ifnotOpen), strings.Count(template, ifnotClose); o != c {
		findings = append(findings, fmt.Sprintf("Mismatched inverse conditional: %d %s tag(s) vs %d %s tag(s)", o, "{ifnot:}", c, ifnotClose))
	}
	return findings
}
