// Package metrics defines all custom Prometheus metrics for the blog admin
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success", "invalid_credentials", or "account_disabled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "created", "conflict", or "rejected_password"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// PasswordResetRequestsTotal counts reset requests acknowledged to clients.
// The counter deliberately does not distinguish known from unknown
// addresses; that distinction never leaves the service.
var PasswordResetRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_reset_requests_total",
		Help:      "Total number of password reset requests received.",
	},
)

// PasswordResetsCompletedTotal counts successful token redemptions.
var PasswordResetsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_completed_total",
		Help:      "Total number of password resets completed with a valid token.",
	},
)

// PasswordChangesTotal counts self-service password changes.
// Label:
//   - result: "success", "wrong_current", or "rejected_password"
var PasswordChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of authenticated password changes, labelled by result.",
	},
	[]string{"result"},
)
