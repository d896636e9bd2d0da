package templater

import "strings"

// applyFallbacks resolves {{NAME|DEFAULT}} pairs. NAME is one or more word
// characters; DEFAULT runs non-greedily up to the first subsequent "}}", so
// it may contain literal single braces ({{company|use {braces} here}}).
// A blank value (missing, empty, or whitespace-only) yields DEFAULT, emitted
// as plain text without recursive resolution; like any literal it still
// flows through the remaining pipeline stages. Plain {{NAME}} placeholders
// are not touched here; they belong to the injection stage.
//
// Returns the rewritten text and the names that resolved to a value.
func applyFallbacks(text string, vars Vars) (string, []string) {
	var out strings.Builder
	out.Grow(len(text))
	var used []string

	i := 0
	for i < len(text) {
		rel := strings.Index(text[i:], "{{")
		if rel < 0 {
			out.WriteString(text[i:])
			return out.String(), used
		}
		out.WriteString(text[i : i+rel])
		i += rel

		rest := text[i:]
		j := 2
		for j < len(rest) && isWordChar(rest[j]) {
			j++
		}
		if j == 2 || j >= len(rest) || rest[j] != '|' {
			out.WriteByte('{')
			i++
			continue
		}
		end := strings.Index(rest[j+1:], "}}")
		if end < 0 {
			out.WriteByte('{')
			i++
			continue
		}

		name := rest[2:j]
		def := rest[j+1 : j+1+end]
		if present(vars, name) {
			used = append(used, name)
			out.WriteString(vars[name])
		} else {
			out.WriteString(def)
		}
		i += j + 1 + end + 2
	}
	return out.String(), used
}
