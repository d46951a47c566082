// Package metrics defines and registers all custom Prometheus metrics for the
// recruitment API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recruitment"

// SignupsTotal counts successfully registered persons.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful sign-ups.",
	},
)

// SigninsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the session middleware.
// Label:
//   - reason: "no_token", "invalid_token", "role_mismatch" or "stale_identity"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected with 401, labelled by reason.",
	},
	[]string{"reason"},
)

// ApplicationsSubmittedTotal counts stored applications.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of applications stored.",
	},
)

// CompetenceCacheTotal counts competence cache lookups.
// Label:
//   - result: "hit" or "miss"
var CompetenceCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "competence_cache_total",
		Help:      "Total number of competence cache lookups, labelled by result.",
	},
	[]string{"result"},
)
