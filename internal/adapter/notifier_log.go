package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-course-auth/internal/logger"
)

// LogNotifier records reset codes in the service log. It is meant for
// development setups without a mail relay.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) SendResetCode(_ context.Context, email, code string, expiresAt time.Time) error {
	n.logger.Info().
		Str("func", "*LogNotifier.SendResetCode").
		Str("email", email).
		Str("code", code).
		Time("expires_at", expiresAt).
		Msg("password reset code issued")

	return nil
}
