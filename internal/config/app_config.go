package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/shaharia-lab/contactmail/internal/mailer"
)

// AppConfig holds all application-level configuration loaded from environment variables.
type AppConfig struct {
	// ContactEmail is both the sender and the recipient of every submission.
	// Optional at load time; an empty address makes every send fail.
	ContactEmail string `envconfig:"CONTACT_EMAIL"`

	// ContactEmailPassword is the SMTP auth secret for ContactEmail.
	ContactEmailPassword string `envconfig:"CONTACT_EMAIL_PASSWORD"`

	SMTPHost string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`

	// SMTPUsername defaults to ContactEmail when empty.
	SMTPUsername string `envconfig:"SMTP_USERNAME"`

	// SMTPEncryption is one of none, starttls, ssl_tls.
	SMTPEncryption string `envconfig:"SMTP_ENCRYPTION" default:"starttls"`

	SMTPTimeout time.Duration `envconfig:"SMTP_TIMEOUT" default:"30s"`

	// Port is the HTTP server port used by "serve". Defaults to 8080.
	Port int `envconfig:"PORT" default:"8080"`

	// CORSAllowedOrigins is a comma separated origin list for "serve".
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// LogLevel sets the minimum log level (debug, info, warn, error). Defaults to info.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFile, when set, sends logs to a rotating file instead of stderr.
	LogFile string `envconfig:"LOG_FILE"`
}

// Load reads AppConfig from environment variables using envconfig.
// Missing mail credentials are not an error here.
func Load() (*AppConfig, error) {
	var c AppConfig
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	switch c.SMTPEncryption {
	case mailer.EncryptionNone, mailer.EncryptionSTARTTLS, mailer.EncryptionSSLTLS:
	default:
		return nil, fmt.Errorf("loading config: unsupported SMTP_ENCRYPTION %q", c.SMTPEncryption)
	}
	return &c, nil
}

// SMTP returns the sender configuration derived from the environment.
func (c *AppConfig) SMTP() mailer.SMTPConfig {
	username := c.SMTPUsername
	if username == "" {
		username = c.ContactEmail
	}
	return mailer.SMTPConfig{
		Host:       c.SMTPHost,
		Port:       c.SMTPPort,
		Username:   username,
		Password:   c.ContactEmailPassword,
		Encryption: c.SMTPEncryption,
		Timeout:    c.SMTPTimeout,
	}
}

// AllowedOrigins splits CORSAllowedOrigins, dropping empty entries.
func (c *AppConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// SlogLevel converts the LogLevel string to a slog.Level.
// Unknown values default to slog.LevelInfo.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
