package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPSender delivers messages via SMTP using the go-mail library.
type SMTPSender struct {
	config SMTPConfig
}

// NewSMTPSender creates a new SMTPSender with the given configuration.
// No connection is made until Send is called.
func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{config: config}
}

// Name returns the backend identifier.
func (s *SMTPSender) Name() string { return "smtp" }

// Send delivers msg as a plain-text email using the configured SMTP server.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return err
	}

	c, err := mail.NewClient(s.config.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending mail via %s: %w", s.config.Host, err)
	}
	return nil
}

func buildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.config.Username),
		mail.WithPassword(s.config.Password),
	}
	if s.config.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.config.Timeout))
	}
	if s.config.Encryption == EncryptionSSLTLS {
		return append(opts, mail.WithSSL())
	}
	return append(opts, mail.WithTLSPolicy(tlsPolicyFromEncryption(s.config.Encryption)))
}

// tlsPolicyFromEncryption converts the encryption string to a go-mail TLSPolicy.
// Implicit TLS is handled separately via mail.WithSSL.
func tlsPolicyFromEncryption(enc string) mail.TLSPolicy {
	switch enc {
	case EncryptionSTARTTLS:
		return mail.TLSMandatory
	case EncryptionNone:
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}
