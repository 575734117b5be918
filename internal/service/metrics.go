package service

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels of the reset flow counters.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// ResetCodesIssued counts reset codes written to the ledger.
var ResetCodesIssued = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "course_auth_reset_codes_issued_total",
		Help: "Total number of password reset codes issued",
	},
)

// ResetCodeVerifications counts verification attempts by outcome.
var ResetCodeVerifications = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "course_auth_reset_code_verifications_total",
		Help: "Total number of reset code verifications",
	},
	[]string{"outcome"},
)

// NotificationFailures counts reset codes that could not be delivered.
var NotificationFailures = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "course_auth_notification_failures_total",
		Help: "Total number of failed reset code deliveries",
	},
)

// PasswordResets counts completed password resets by outcome.
var PasswordResets = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "course_auth_password_resets_total",
		Help: "Total number of password reset attempts",
	},
	[]string{"outcome"},
)

// RegisterMetrics registers service metrics with reg.
// Panics if registration fails.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(ResetCodesIssued)
	reg.MustRegister(ResetCodeVerifications)
	reg.MustRegister(NotificationFailures)
	reg.MustRegister(PasswordResets)
}
