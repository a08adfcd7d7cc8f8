// Package metrics defines and registers all custom Prometheus metrics for the
// professionals API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "professionals"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing_token", "invalid_token", "user_gone", "account_disabled" or "internal"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "disabled" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts session tokens handed to clients.
// Label:
//   - reason: "login" or "profile_edit"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued.",
	},
	[]string{"reason"},
)

// ── Professional user metrics ─────────────────────────────────────────────────

// ProfessionalUserMutationsTotal counts successful writes.
// Label:
//   - operation: "signup", "edit", "disable" or "delete"
var ProfessionalUserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "professional_user_mutations_total",
		Help:      "Total number of successful professional user mutations, by operation.",
	},
	[]string{"operation"},
)
