package templater

import "strings"

const (
	ifOpen     = "{if:"
	ifClose    = "{/if}"
	elseTag    = "{else}"
	ifnotOpen  = "{ifnot:"
	ifnotClose = "{/ifnot}"
)

// present reports whether name carries a usable value for conditional
// evaluation: the key exists and its whitespace-trimmed value is non-empty.
// Missing, empty, and whitespace-only are all absent here, unlike the plain
// injection stage where an empty string is still a substitutable value.
func present(vars Vars, name string) bool {
	v, ok := vars[name]
	return ok && strings.TrimSpace(v) != ""
}

// processConditionals resolves {if:NAME}A{/if}, {if:NAME}A{else}B{/if} and
// {ifnot:NAME}A{/ifnot} blocks in a single left-to-right scan. Blocks do not
// nest: each opening tag pairs with the nearest subsequent closing tag of its
// kind. The surviving branch is emitted verbatim, tags removed; its content
// may still contain variables or spintax for the later stages. Tags that
// never find a partner stay in the output as ordinary text.
//
// Returns the rewritten text and the condition names that were evaluated.
func processConditionals(text string, vars Vars) (string, []string) {
	var out strings.Builder
	out.Grow(len(text))
	var used []string

	i := 0
	for i < len(text) {
		rel := strings.IndexByte(text[i:], '{')
		if rel < 0 {
			out.WriteString(text[i:])
			return out.String(), used
		}
		out.WriteString(text[i : i+rel])
		i += rel

		rest := text[i:]
		var open, closing string
		negate := false
		switch {
		case strings.HasPrefix(rest, ifnotOpen):
			open, closing, negate = ifnotOpen, ifnotClose, true
		case strings.HasPrefix(rest, ifOpen):
			open, closing = ifOpen, ifClose
		default:
			out.WriteByte('{')
			i++
			continue
		}

		name, bodyStart, ok := scanTagName(rest, len(open))
		if !ok {
			out.WriteByte('{')
			i++
			continue
		}
		end := strings.Index(rest[bodyStart:], closing)
		if end < 0 {
			// Opener without a closer: leave the "{" literal and move on so
			// the rest of the template still renders.
			out.WriteByte('{')
			i++
			continue
		}
		body := rest[bodyStart : bodyStart+end]

		used = append(used, name)
		switch {
		case negate:
			if !present(vars, name) {
				out.WriteString(body)
			}
		default:
			hit, miss := body, ""
			if at := strings.Index(body, elseTag); at >= 0 {
				hit, miss = body[:at], body[at+len(elseTag):]
			}
			if present(vars, name) {
				out.WriteString(hit)
			} else {
				out.WriteString(miss)
			}
		}
		i += bodyStart + end + len(closing)
	}
	return out.String(), used
}

// scanTagName reads the NAME of an opening tag starting at offset start and
// returns it along with the offset just past the tag's closing brace. A name
// must be one or more word characters; anything else means the "{" opened
// ordinary text (for example a spintax block) rather than a conditional.
func scanTagName(s string, start int) (name string, bodyStart int, ok bool) {
	j := start
	for j < len(s) && s[j] != '}' {
		if !isWordChar(s[j]) {
			return "", 0, false
		}
		j++
	}
	if j == start || j >= len(s) {
		return "", 0, false
	}
	return s[start:j], j + 1, true
}

func isWordChar(c byte) bool {
	return c == '_' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9'
}
