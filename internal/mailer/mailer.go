package mailer

import "context"

// Message represents an outbound email payload.
//
// Fields are provider-agnostic so a delivery backend other than SMTP can be
// substituted without touching the contact workflow.
type Message struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer abstracts the transport that delivers a constructed email.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
