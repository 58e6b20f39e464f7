// Package metrics defines and registers all custom Prometheus metrics
// for the vault API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vault"

// ── Ledger metrics ────────────────────────────────────────────────────────────

// TransactionsRecordedTotal counts ledger entries written.
// Label:
//   - type: the type string the client sent (usually "Credit" or "Debit",
//     but any value is accepted and stored)
var TransactionsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_recorded_total",
		Help:      "Total number of ledger entries recorded, by transaction type.",
	},
	[]string{"type"},
)

// TransactionsDedupTotal counts idempotency-key decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new, recorded)
var TransactionsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_dedup_total",
		Help:      "Total number of idempotency checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// AggregationDuration measures how long a single derived-value scan takes.
// Label:
//   - kind: "balance", "daily", "monthly", or "yearly"
var AggregationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregation_duration_seconds",
		Help:      "Duration of ledger aggregation pipelines, by kind.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "bad_password", or "unknown_user"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// ── Goal metrics ──────────────────────────────────────────────────────────────

// GoalsSavedTotal counts saved goal records.
var GoalsSavedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "goals_saved_total",
		Help:      "Total number of goal records saved.",
	},
)
