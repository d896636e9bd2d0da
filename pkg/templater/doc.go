// Package templater implements the cold-outreach template engine: it turns a
// stored email template (subject or body) plus a per-recipient variable map
// into final or preview text.
//
// A template is plain text containing any mix of four constructs:
//
//	Spintax               {opt1|opt2|...}        one alternative is selected
//	Conditional block     {if:NAME}A{/if}        A kept when NAME is present
//	                      {if:NAME}A{else}B{/if}
//	Inverse conditional   {ifnot:NAME}A{/ifnot}  A kept when NAME is absent
//	Fallback variable     {{NAME|DEFAULT}}       DEFAULT used when NAME blank
//	Plain variable        {{NAME}}               value substituted
//
// The engine never fails. Malformed input degrades instead of erroring:
// unknown placeholders stay verbatim, a brace group without a pipe is
// ordinary text, unterminated tags are emitted as-is, and deeply nested
// spintax stops resolving after a fixed pass cap.
//
// # Pipeline
//
// Every render runs a fixed stage order:
//
//	Normalize -> conditionals -> fallbacks -> variable injection -> spintax
//
// Normalize closes the variable map under a fixed registry of alias families
// so that camelCase and snake_case spellings of the same field (firstName /
// first_name, senderCompany / sender_company, ...) always carry the same
// value. Conditionals run first so that branch content is only resolved once
// the branch is chosen; fallbacks run before spintax so that `{{a|b}}` is
// never torn apart as a pipe-bearing brace group.
//
// Two truthiness rules coexist deliberately: conditionals and fallbacks treat
// missing, empty, and whitespace-only values all as absent, while plain
// variable injection substitutes any existing key, including one mapped to
// the empty string.
//
// # Usage
//
//	r := templater.New()
//
//	vars := templater.Vars{"firstName": "Jane", "company": "Acme"}
//	body := r.Render("{Hi|Hey} {{firstName|there}}, greetings from {{senderCompany}}!", vars)
//
// Preview rendering cycles through spintax variations deterministically:
//
//	first := r.Preview(tpl, vars, 0)
//	second := r.Preview(tpl, vars, 1)
//
// A negative variation index renders the preview exactly like the send path,
// with a random spintax pick per block.
//
// # Concurrency
//
// The engine holds no state between calls. The default random source is the
// process-global math/rand/v2 source, so a single Renderer may be shared by
// any number of goroutines. A custom source supplied via WithRandSource is
// intended for deterministic tests and must not be shared across goroutines.
package templater
