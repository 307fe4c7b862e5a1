package cmd

import (
	"log/slog"

	"github.com/shaharia-lab/contactmail/internal/config"
	"github.com/shaharia-lab/contactmail/internal/contact"
	"github.com/shaharia-lab/contactmail/internal/mailer"
)

// newContactHandler builds the process-wide handler and its SMTP sender.
func newContactHandler(cfg *config.AppConfig, logger *slog.Logger) *contact.Handler {
	sender := mailer.NewSMTPSender(cfg.SMTP())
	return contact.NewHandler(sender, cfg.ContactEmail, logger)
}
