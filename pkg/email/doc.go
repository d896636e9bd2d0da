// Package email provides a provider-agnostic delivery seam for rendered
// outreach messages: a Sender interface with a Postmark implementation for
// production and a filesystem DevSender for local development.
//
// The package deliberately knows nothing about templates, leads, or
// campaigns. Upstream code (pkg/outreach) renders subject and body through
// the template engine and hands this package an opaque Message.
//
// # Usage
//
// Production delivery through Postmark:
//
//	cfg := email.Config{
//	    PostmarkServerToken:  "server-token",
//	    PostmarkAccountToken: "account-token",
//	    FromEmail:            "alex@senddomain.io",
//	    ReplyToEmail:         "alex@company.com",
//	}
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	err = sender.Send(ctx, email.Message{
//	    To:       "jane@acme.io",
//	    Subject:  "Quick question about Acme",
//	    BodyText: renderedBody,
//	    Tag:      "campaign-14-step-2",
//	})
//
// Development mode writes messages to disk instead:
//
//	sender := email.NewDevSender("./tmp/outreach-mail")
//
// # Error Handling
//
// Sentinel errors support errors.Is checks:
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidMessage: message validation failed
//   - ErrSendFailed: delivery failed
//
// All senders validate the message before any I/O, so a malformed message
// never consumes provider quota.
package email
