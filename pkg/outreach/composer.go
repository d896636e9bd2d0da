package outreach

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/outreachkit/pkg/email"
	"github.com/dmitrymomot/outreachkit/pkg/templater"
)

// Composer turns stored templates plus a lead and an inbox into rendered
// messages. Both product call sites - the campaign send path and the reply
// (unibox) path - funnel through the same renderer and the same variable-map
// assembly, so a template behaves identically wherever it is used.
type Composer struct {
	renderer *templater.Renderer
	log      *slog.Logger
	newID    func() string
}

// Option configures a Composer.
type Option func(*Composer)

// WithRenderer replaces the default template renderer, e.g. to tune the
// variation cap or to inject a seeded random source in tests.
func WithRenderer(r *templater.Renderer) Option {
	return func(c *Composer) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithLogger sets the logger for send outcomes. Defaults to a discard
// handler; composition itself never logs.
func WithLogger(log *slog.Logger) Option {
	return func(c *Composer) {
		if log != nil {
			c.log = log
		}
	}
}

// WithIDGenerator overrides message ID generation, for deterministic tests.
func WithIDGenerator(fn func() string) Option {
	return func(c *Composer) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New creates a Composer with a default renderer, a discard logger, and
// UUID message IDs.
func New(opts ...Option) *Composer {
	c := &Composer{
		renderer: templater.New(),
		log:      slog.New(slog.DiscardHandler),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ComposeStep renders a campaign step for one lead: the send path.
func (c *Composer) ComposeStep(step Step, lead Lead, inbox Inbox) Message {
	subject, body := c.renderPair(step.Subject, step.Body, lead, inbox)
	return Message{
		ID:      c.newID(),
		To:      lead.Email,
		Subject: subject,
		Body:    body,
		Tag:     step.Tag,
	}
}

// ComposeReply renders a reply drafted in the unibox. It runs the exact same
// pipeline as ComposeStep; templates must not behave differently between the
// two paths.
func (c *Composer) ComposeReply(subjectTpl, bodyTpl string, lead Lead, inbox Inbox) Message {
	subject, body := c.renderPair(subjectTpl, bodyTpl, lead, inbox)
	return Message{
		ID:      c.newID(),
		To:      lead.Email,
		Subject: subject,
		Body:    body,
	}
}

// renderPair is the single funnel both call sites share.
func (c *Composer) renderPair(subjectTpl, bodyTpl string, lead Lead, inbox Inbox) (string, string) {
	vars := BuildVars(lead, inbox)
	return c.renderer.Render(subjectTpl, vars), c.renderer.Render(bodyTpl, vars)
}

// PreviewStep renders a step for the preview UI. A non-negative variation
// index cycles spintax expansions deterministically; a negative one renders
// exactly like the send path.
func (c *Composer) PreviewStep(step Step, lead Lead, inbox Inbox, variation int) (subject, body string) {
	vars := BuildVars(lead, inbox)
	return c.renderer.Preview(step.Subject, vars, variation),
		c.renderer.Preview(step.Body, vars, variation)
}

// Send delivers a composed message through the given sender and logs the
// outcome. The message body is the rendered template as stored by the
// campaign editor, passed through as the HTML body.
func (c *Composer) Send(ctx context.Context, sender email.Sender, msg Message) error {
	err := sender.Send(ctx, email.Message{
		To:       msg.To,
		Subject:  msg.Subject,
		BodyHTML: msg.Body,
		Tag:      msg.Tag,
	})
	if err != nil {
		c.log.ErrorContext(ctx, "outreach message send failed",
			slog.String("message_id", msg.ID),
			slog.String("to", msg.To),
			slog.Any("error", err),
		)
		return fmt.Errorf("send message %s: %w", msg.ID, err)
	}
	c.log.InfoContext(ctx, "outreach message sent",
		slog.String("message_id", msg.ID),
		slog.String("to", msg.To),
		slog.String("tag", msg.Tag),
	)
	return nil
}
