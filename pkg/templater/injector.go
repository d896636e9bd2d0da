package templater

import "strings"

// injectVariables resolves plain {{NAME}} placeholders. A key that exists in
// the map substitutes even when its value is the empty string. A name absent
// from the map leaves the placeholder verbatim, delimiters included —
// silently stripping unresolved placeholders is a regression the test suite
// guards against.
//
// Returns the rewritten text, the names that were substituted, and the names
// left unresolved.
func injectVariables(text string, vars Vars) (string, []string, []string) {
	var out strings.Builder
	out.Grow(len(text))
	var used, missing []string

	i := 0
	for i < len(text) {
		rel := strings.Index(text[i:], "{{")
		if rel < 0 {
			out.WriteString(text[i:])
			return out.String(), used, missing
		}
		out.WriteString(text[i : i+rel])
		i += rel

		rest := text[i:]
		j := 2
		for j < len(rest) && isWordChar(rest[j]) {
			j++
		}
		if j == 2 || j+1 >= len(rest) || rest[j] != '}' || rest[j+1] != '}' {
			out.WriteByte('{')
			i++
			continue
		}

		name := rest[2:j]
		if v, ok := vars[name]; ok {
			used = append(used, name)
			out.WriteString(v)
		} else {
			missing = append(missing, name)
			out.WriteString(rest[:j+2])
		}
		i += j + 2
	}
	return out.String(), used, missing
}
