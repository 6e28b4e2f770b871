package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Config captures the SMTP settings and the frontend base URL the reset
// link points at.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	FromName    string
	FrontendURL string
}

// SMTPMailer delivers password-reset mail over SMTP. The reset token only
// ever appears inside the mailed link, never in an API response.
type SMTPMailer struct {
	dialer      *gomail.Dialer
	from        string
	fromName    string
	frontendURL string
	log         zerolog.Logger
}

func NewSMTPMailer(cfg Config, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:      gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:        cfg.From,
		fromName:    cfg.FromName,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		log:         log,
	}
}

// SendResetLink mails the password-reset link to the recipient.
func (m *SMTPMailer) SendResetLink(ctx context.Context, recipient, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, token)

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Reset your password")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p><a href=%q>Reset your password</a></p>"+
			"<p>The link expires in 24 hours. If you did not request this, ignore this mail.</p>",
		link,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	m.log.Info().Str("recipient", recipient).Msg("reset mail sent")
	return nil
}
