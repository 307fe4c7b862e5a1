// Package contact turns a raw contact form request into an outgoing email and
// a structured response.
package contact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shaharia-lab/contactmail/internal/mailer"
)

// Request is the boundary input. A nil or empty Body is treated as "{}".
type Request struct {
	Body *string
}

// RequestFromString wraps body in a Request.
func RequestFromString(body string) Request {
	return Request{Body: &body}
}

func (r Request) body() string {
	if r.Body == nil || *r.Body == "" {
		return "{}"
	}
	return *r.Body
}

// Handler validates submissions and forwards them to a fixed address.
// It holds no per-request state and is safe for concurrent use.
type Handler struct {
	sender  mailer.Sender
	address string
	logger  *slog.Logger
}

// NewHandler creates a Handler that sends every valid submission from and to
// address through sender. The address is not checked here; a bad or empty
// address surfaces as a delivery failure.
func NewHandler(sender mailer.Sender, address string, logger *slog.Logger) *Handler {
	return &Handler{sender: sender, address: address, logger: logger}
}

// Handle processes req and returns the boundary response. It never panics.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	return h.Process(ctx, req).Response()
}

// Process runs parse, validate, format and send, returning the outcome.
func (h *Handler) Process(ctx context.Context, req Request) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = newDeliveryFailure(panicError(r))
		}
		h.logOutcome(ctx, out)
	}()

	sub, details := ParseSubmission(req.body())
	if details != nil {
		return ValidationFailure{Details: details}
	}

	msg := mailer.Message{
		To:      h.address,
		From:    h.address,
		Subject: Subject(sub),
		Body:    FormatBody(sub),
	}
	if err := h.sender.Send(ctx, msg); err != nil {
		return newDeliveryFailure(err)
	}
	return Success{}
}

func (h *Handler) logOutcome(ctx context.Context, out Outcome) {
	resp := out.Response()
	attrs := []slog.Attr{
		slog.String("outcome", out.Kind()),
		slog.Int("status", resp.StatusCode),
		slog.String("sender", h.sender.Name()),
	}
	switch o := out.(type) {
	case DeliveryFailure:
		attrs = append(attrs, slog.String("error", o.Message))
		h.logger.LogAttrs(ctx, slog.LevelError, "contact submission failed", attrs...)
	case ValidationFailure:
		attrs = append(attrs, slog.Any("invalid_fields", o.Details.Fields()))
		h.logger.LogAttrs(ctx, slog.LevelWarn, "contact submission rejected", attrs...)
	default:
		h.logger.LogAttrs(ctx, slog.LevelInfo, "contact submission sent", attrs...)
	}
}

func panicError(r any) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return nil
	}
}
