package templater

import mathrand "math/rand/v2"

// Renderer orchestrates the full pipeline over the four template constructs.
// The zero value is not usable; create one with New. A Renderer holds no
// mutable state between calls and may be shared across goroutines as long as
// no custom random source was injected.
type Renderer struct {
	rng           *mathrand.Rand
	maxVariations int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRandSource sets the random source used for send-time spintax picks.
// Intended for deterministic tests; production callers should rely on the
// default process-global source, which needs no locking.
func WithRandSource(rng *mathrand.Rand) Option {
	return func(r *Renderer) {
		r.rng = rng
	}
}

// WithMaxVariations overrides the cap on enumerated spintax expansions.
// Values <= 0 keep DefaultMaxVariations.
func WithMaxVariations(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxVariations = n
		}
	}
}

// New creates a Renderer with the default random source and variation cap.
func New(opts ...Option) *Renderer {
	r := &Renderer{maxVariations: DefaultMaxVariations}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report describes which variable names a render consumed and which
// placeholders stayed unresolved. Preview tooling uses it to show the fields
// a template depends on before a campaign goes out.
type Report struct {
	// Used lists names that influenced the output, in first-use order:
	// conditions evaluated, fallbacks and placeholders substituted.
	Used []string
	// Missing lists placeholder names left verbatim because the variable map
	// has no such key.
	Missing []string
}

// Render produces final send-time text: normalize, conditionals, fallbacks,
// variable injection, then a random spintax pick per block. Unknown
// placeholders survive verbatim; malformed constructs degrade instead of
// failing.
func (r *Renderer) Render(template string, vars Vars) string {
	out, _ := r.RenderWithReport(template, vars)
	return out
}

// RenderWithReport is Render plus the consumed/missing name sets.
func (r *Renderer) RenderWithReport(template string, vars Vars) (string, Report) {
	return r.render(template, vars, -1)
}

// Preview renders the template exactly like the send path except for spintax
// selection: a non-negative variation index picks the enumerated expansion
// index mod count, so repeated calls with the same index return identical
// text. A negative index falls back to a random pick, matching Render.
func (r *Renderer) Preview(template string, vars Vars, variation int) string {
	out, _ := r.render(template, vars, variation)
	return out
}

// Variations returns every preview expansion of the template in canonical
// order, capped at the renderer's variation limit. Templates without spintax
// yield a single entry.
func (r *Renderer) Variations(template string, vars Vars) []string {
	text, _ := r.resolveStatic(template, vars)
	return enumerateSpintax(text, r.maxVariations)
}

func (r *Renderer) render(template string, vars Vars, variation int) (string, Report) {
	text, report := r.resolveStatic(template, vars)
	if variation < 0 {
		text = resolveSpintax(text, r.rng)
	} else {
		text = variationAt(text, variation, r.maxVariations)
	}
	return text, report
}

// resolveStatic runs the deterministic stages shared by send, preview, and
// enumeration: normalize -> conditionals -> fallbacks -> injection.
func (r *Renderer) resolveStatic(template string, vars Vars) (string, Report) {
	m := Normalize(vars)
	text, condUsed := processConditionals(template, m)
	text, fbUsed := applyFallbacks(text, m)
	text, injUsed, missing := injectVariables(text, m)

	var report Report
	report.Used = appendUnique(report.Used, condUsed...)
	report.Used = appendUnique(report.Used, fbUsed...)
	report.Used = appendUnique(report.Used, injUsed...)
	report.Missing = appendUnique(nil, missing...)
	return text, report
}

func appendUnique(dst []string, names ...string) []string {
	for _, name := range names {
		seen := false
		for _, have := range dst {
			if have == name {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, name)
		}
	}
	return dst
}
