// Package metrics defines and registers the custom Prometheus metrics for the
// events API. It is the single source of truth for metric names, labels, and
// help strings. Registration happens via promauto at package init; HTTP-level
// metrics come from the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "events"

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// EventMutationsTotal counts admin event mutations.
// Label:
//   - op: "create", "update", or "delete"
var EventMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_mutations_total",
		Help:      "Total number of event create/update/delete operations.",
	},
	[]string{"op"},
)

// RegistrationsTotal counts registration ledger outcomes.
// Label:
//   - result: "created", "duplicate", or "cancelled"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts and cancellations, labelled by outcome.",
	},
	[]string{"result"},
)
