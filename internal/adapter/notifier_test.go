package adapter

import (
	"bytes"
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPNotifier_SendResetCode(t *testing.T) {
	n := NewSMTPNotifier(config.SMTP{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "no-reply@example.com",
	})

	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  []byte
		gotAuth smtp.Auth
	)
	n.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg
		return nil
	}

	expiresAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err := n.SendResetCode(context.Background(), "a@x.io", "123456", expiresAt)

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.NotNil(t, gotAuth)
	assert.Equal(t, "no-reply@example.com", gotFrom)
	assert.Equal(t, []string{"a@x.io"}, gotTo)
	assert.Contains(t, string(gotMsg), "To: a@x.io\r\n")
	assert.Contains(t, string(gotMsg), "Your password reset code is 123456.")
	assert.Contains(t, string(gotMsg), expiresAt.Format(time.RFC1123))
}

func TestSMTPNotifier_NoAuthWithoutUsername(t *testing.T) {
	n := NewSMTPNotifier(config.SMTP{Host: "localhost", Port: 25, From: "a@b.c"})
	assert.Nil(t, n.auth)
}

func TestSMTPNotifier_DeliveryFailure(t *testing.T) {
	n := NewSMTPNotifier(config.SMTP{Host: "localhost", Port: 25, From: "a@b.c"})
	n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := n.SendResetCode(context.Background(), "a@x.io", "123456", time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestSMTPNotifier_CanceledContext(t *testing.T) {
	n := NewSMTPNotifier(config.SMTP{Host: "localhost", Port: 25, From: "a@b.c"})
	n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("sendMail must not be called")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.SendResetCode(ctx, "a@x.io", "123456", time.Now())

	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogNotifier_SendResetCode(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logger.NewWriterLogger("test", &buf))

	err := n.SendResetCode(context.Background(), "a@x.io", "654321", time.Now())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"email":"a@x.io"`)
	assert.Contains(t, buf.String(), `"code":"654321"`)
}
