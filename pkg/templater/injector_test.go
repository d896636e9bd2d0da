package templater_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/outreachkit/pkg/templater"
)

func TestRender_VariableInjection(t *testing.T) {
	t.Parallel()

	r := templater.New()

	tests := []struct {
		name     string
		template string
		vars     templater.Vars
		expected string
	}{
		{
			name:     "known placeholder substitutes",
			template: "Hi {{firstName}}",
			vars:     templater.Vars{"firstName": "Jane"},
			expected: "Hi Jane",
		},
		{
			name:     "empty string is a valid substitution",
			template: "Hi {{x}}",
			vars:     templater.Vars{"x": ""},
			expected: "Hi ",
		},
		{
			name:     "unknown placeholder preserved verbatim",
			template: "Hi {{zzz}}",
			vars:     templater.Vars{},
			expected: "Hi {{zzz}}",
		},
		{
			name:     "alias spelling substitutes",
			template: "{{sender_company}}",
			vars:     templater.Vars{"senderCompany": "Acme"},
			expected: "Acme",
		},
		{
			name:     "custom field substitutes",
			template: "re: {{painPoint}}",
			vars:     templater.Vars{"painPoint": "churn"},
			expected: "re: churn",
		},
		{
			name:     "mixed known and unknown",
			template: "{{a}}-{{b}}-{{c}}",
			vars:     templater.Vars{"a": "1", "c": "3"},
			expected: "1-{{b}}-3",
		},
		{
			name:     "whitespace-only value is injected as-is",
			template: "[{{x}}]",
			vars:     templater.Vars{"x": "  "},
			expected: "[  ]",
		},
		{
			name:     "malformed placeholder left alone",
			template: "{{not closed",
			vars:     templater.Vars{"not": "v"},
			expected: "{{not closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, r.Render(tt.template, tt.vars))
		})
	}
}

// Fallback and plain injection deliberately disagree about empty strings:
// an empty value falls back to the default, but is injected as-is.
func TestRender_FallbackInjectionAsymmetry(t *testing.T) {
	t.Parallel()

	r := templater.New()
	vars := templater.Vars{"x": ""}

	assert.Equal(t, "d", r.Render("{{x|d}}", vars))
	assert.Equal(t, "Hi ", r.Render("Hi {{x}}", vars))
}
