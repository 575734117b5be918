package workers

import "github.com/prometheus/client_golang/prometheus"

// Kinds of rows removed by the cleanup worker.
const (
	kindResetCode  = "reset_code"
	kindResetGrant = "reset_grant"
	kindOAuthState = "oauth_state"
)

// CleanupRemoved counts expired entries removed by the cleanup worker.
var CleanupRemoved = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "course_auth_cleanup_removed_total",
		Help: "Total number of expired entries removed by the cleanup worker",
	},
	[]string{"kind"},
)

// CleanupFailures counts cleanup passes that failed for a kind.
var CleanupFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "course_auth_cleanup_failures_total",
		Help: "Total number of failed cleanup passes",
	},
	[]string{"kind"},
)

// RegisterMetrics registers worker metrics with reg.
// Panics if registration fails.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(CleanupRemoved)
	reg.MustRegister(CleanupFailures)
}
