package outreach

import "github.com/dmitrymomot/outreachkit/pkg/templater"

// Config tunes composition via environment variables.
type Config struct {
	// MaxVariations caps spintax enumeration in previews; pathological
	// templates would otherwise explode combinatorially.
	MaxVariations int `env:"OUTREACH_MAX_VARIATIONS" envDefault:"50"`
}

// NewFromConfig creates a Composer whose renderer honors cfg. Later options
// still win, so tests can layer a seeded renderer on top.
func NewFromConfig(cfg Config, opts ...Option) *Composer {
	base := templater.New(templater.WithMaxVariations(cfg.MaxVariations))
	return New(append([]Option{WithRenderer(base)}, opts...)...)
}
