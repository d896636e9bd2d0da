package templater

import (
	mathrand "math/rand/v2"
	"strings"
)

// spintaxMaxPasses bounds resolution so that malformed or absurdly nested
// input cannot loop forever. Each pass removes one layer of nesting; content
// still unresolved after the cap stays in the output as-is.
const spintaxMaxPasses = 10

// DefaultMaxVariations caps the cartesian product produced by spintax
// enumeration, bounding the cost of pathological templates.
const DefaultMaxVariations = 50

// resolveSpintax expands every {opt1|opt2|...} block with an independent
// uniform pick. A brace group without a pipe ({Hello}) is ordinary text, not
// spintax. rng may be nil, in which case the process-global math/rand/v2
// source is used.
func resolveSpintax(text string, rng *mathrand.Rand) string {
	for range spintaxMaxPasses {
		next, changed := resolveOnce(text, func(opts []string) string {
			return opts[rngIntN(rng, len(opts))]
		})
		text = next
		if !changed {
			break
		}
	}
	return text
}

// resolveOnce rewrites all spintax blocks found in one left-to-right scan,
// outermost first. A picked alternative may itself contain nested blocks;
// those are handled by the next pass.
func resolveOnce(text string, pick func([]string) string) (string, bool) {
	var out strings.Builder
	out.Grow(len(text))
	changed := false

	i := 0
	for i < len(text) {
		rel := strings.IndexByte(text[i:], '{')
		if rel < 0 {
			out.WriteString(text[i:])
			break
		}
		out.WriteString(text[i : i+rel])
		i += rel

		opts, width := splitBlock(text[i:])
		if opts == nil {
			out.WriteByte('{')
			i++
			continue
		}
		out.WriteString(pick(opts))
		changed = true
		i += width
	}
	return out.String(), changed
}

// splitBlock reads the brace group opening at s[0] and splits its content on
// top-level pipes. It returns nil when the group is unterminated or carries
// no top-level pipe; such a group is not spintax and its interior is scanned
// on its own. The second result is the width of the full group in s.
func splitBlock(s string) ([]string, int) {
	depth := 0
	start := 1
	var opts []string
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				if len(opts) == 0 {
					return nil, 0
				}
				return append(opts, s[start:i]), i + 1
			}
		case '|':
			if depth == 1 {
				opts = append(opts, s[start:i])
				start = i + 1
			}
		}
	}
	return nil, 0
}

// enumerateSpintax returns every full expansion of text in canonical order:
// left-to-right across blocks, first alternative first, so index 0 is the
// all-first-alternatives expansion. The result is capped at limit entries
// and always contains at least one (text itself when it has no spintax).
func enumerateSpintax(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMaxVariations
	}
	var results []string
	var walk func(prefix, rest string)
	walk = func(prefix, rest string) {
		i := 0
		for i < len(rest) {
			rel := strings.IndexByte(rest[i:], '{')
			if rel < 0 {
				break
			}
			i += rel
			opts, width := splitBlock(rest[i:])
			if opts == nil {
				i++
				continue
			}
			for _, opt := range opts {
				if len(results) >= limit {
					return
				}
				walk(prefix+rest[:i], opt+rest[i+width:])
			}
			return
		}
		results = append(results, prefix+rest)
	}
	walk("", text)
	return results
}

// variationAt deterministically selects expansion index%count, letting a
// preview cycle "variation 1, 2, 3, ..." reproducibly without re-randomizing.
func variationAt(text string, index, limit int) string {
	variants := enumerateSpintax(text, limit)
	if index < 0 {
		index = -index
	}
	return variants[index%len(variants)]
}

// rngIntN returns a uniform int in [0, n) from rng when non-nil, otherwise
// from the process-global math/rand/v2 source, which is safe for concurrent
// callers without coordination.
func rngIntN(rng *mathrand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if rng != nil {
		return rng.IntN(n)
	}
	return mathrand.IntN(n)
}
