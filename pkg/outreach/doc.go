// Package outreach connects the template engine to the product's two render
// call sites: composing campaign steps for sending and composing replies in
// the unibox. Both paths share one renderer and one variable-map assembly,
// which is the package's reason to exist - a template must behave identically
// no matter which surface triggers the render.
//
// The package owns the collaborator contract the engine refuses to know
// about: merging lead fields, inbox (sender) fields, and arbitrary custom
// fields into the flat string map the engine consumes. Non-string custom
// values are filtered out here, never downstream.
//
// # Usage
//
//	c := outreach.New()
//
//	lead := outreach.Lead{Email: "jane@acme.io", FirstName: "Jane", Company: "Acme"}
//	inbox := outreach.Inbox{FromName: "Alex", FromEmail: "alex@senddomain.io", Company: "Initech"}
//
//	step := outreach.Step{
//	    Subject: "{Quick|Short} question about {{company}}",
//	    Body:    "Hi {{firstName|there}},\n\n...",
//	    Tag:     "campaign-14-step-1",
//	}
//
//	msg := c.ComposeStep(step, lead, inbox)
//	err := c.Send(ctx, sender, msg)
//
// Preview cycles spintax variations deterministically for the editor UI:
//
//	subject, body := c.PreviewStep(step, lead, inbox, 0)
package outreach
