package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender delivers a fully rendered outreach message. Implementations must be
// safe for concurrent use; the campaign send path fans out across inboxes.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a single rendered outreach email. Template processing already
// happened upstream; senders treat Subject and the bodies as opaque text.
type Message struct {
	To       string `json:"to"`                  // Recipient address
	Subject  string `json:"subject"`             // Rendered subject line
	BodyHTML string `json:"body_html,omitempty"` // Rendered HTML body
	BodyText string `json:"body_text,omitempty"` // Rendered plain-text body
	Tag      string `json:"tag,omitempty"`       // Optional campaign tag for analytics
}

// addressRegex is intentionally permissive: deliverability checks live with
// the sending provider, this only rejects obvious garbage before an API call.
var addressRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the message is sendable: a plausible recipient address, a
// non-blank subject, and at least one body. Cold outreach frequently sends
// plain text only, so BodyHTML is not required on its own.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	}
	if !addressRegex.MatchString(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.BodyHTML) == "" && strings.TrimSpace(m.BodyText) == "" {
		return fmt.Errorf("%w: either BodyHTML or BodyText is required", ErrInvalidMessage)
	}
	return nil
}
