package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"text/template"
	"time"

	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/logger"
)

var resetCodeMail = template.Must(template.New("reset_code").Parse(
	"From: {{.From}}\r\n" +
		"To: {{.To}}\r\n" +
		"Subject: Your password reset code\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		"Your password reset code is {{.Code}}.\r\n" +
		"It expires at {{.ExpiresAt}}.\r\n" +
		"If you did not request a password reset, ignore this message.\r\n",
))

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier mails reset codes through an SMTP relay.
type SMTPNotifier struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
}

// NewSMTPNotifier builds a notifier for the configured relay. PLAIN
// authentication is used when a username is set.
func NewSMTPNotifier(cfg config.SMTP) *SMTPNotifier {
	n := &SMTPNotifier{
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from:     cfg.From,
		sendMail: smtp.SendMail,
	}
	if cfg.Username != "" {
		n.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return n
}

func (n *SMTPNotifier) SendResetCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	var msg bytes.Buffer
	err := resetCodeMail.Execute(&msg, struct {
		From, To, Code, ExpiresAt string
	}{
		From:      n.from,
		To:        email,
		Code:      code,
		ExpiresAt: expiresAt.UTC().Format(time.RFC1123),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if err = n.sendMail(n.addr, n.auth, n.from, []string{email}, msg.Bytes()); err != nil {
		log.Err(err).Str("func", "*SMTPNotifier.SendResetCode").Str("relay", n.addr).Msg("error sending reset code mail")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	log.Debug().Str("func", "*SMTPNotifier.SendResetCode").Msg("reset code mail sent")
	return nil
}
