// Package metrics defines and registers all custom Prometheus metrics for the
// agency API. It is the single source of truth for metric names, labels, and
// help strings; registration happens on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agency"

// SubmissionsReceivedTotal counts contact-form submissions that were persisted.
var SubmissionsReceivedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_received_total",
		Help:      "Total number of contact submissions persisted.",
	},
)

// MailsSentTotal counts notification emails confirmed dispatched.
var MailsSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mails_sent_total",
		Help:      "Total number of notification emails sent.",
	},
)

// MailsFailedTotal counts notification emails that failed to dispatch.
var MailsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mails_failed_total",
		Help:      "Total number of notification emails that failed.",
	},
)

// PostsPublishedTotal counts blog posts transitioning to published.
var PostsPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_published_total",
		Help:      "Total number of blog posts published.",
	},
)

// GateDenialsTotal counts requests rejected by the access gate.
// Labels:
//   - class: "admin-ui" or "admin-api"
//   - outcome: "unauthenticated" or "forbidden"
var GateDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_denials_total",
		Help:      "Total number of requests denied by the access gate.",
	},
	[]string{"class", "outcome"},
)
