// Package mailer defines the narrow send capability used by the contact
// handler and an SMTP implementation of it.
package mailer

import "context"

// Message is a single plain-text email.
type Message struct {
	To      string
	From    string
	Subject string
	Body    string
}

// Sender is the interface for email delivery backends.
type Sender interface {
	// Name returns the backend identifier (e.g. "smtp").
	Name() string
	// Send delivers msg. It blocks until the backend accepts or rejects it.
	Send(ctx context.Context, msg Message) error
}

// Func adapts an ordinary function to the Sender interface.
type Func func(ctx context.Context, msg Message) error

// Name returns "func".
func (f Func) Name() string { return "func" }

// Send calls f(ctx, msg).
func (f Func) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }
