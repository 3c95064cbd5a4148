// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus collectors for sessions and runs.

// Package metrics declares the Prometheus collectors exported by pathboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NodesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathboard_nodes_added_total",
		Help: "Total number of nodes placed on the canvas.",
	})

	EdgesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathboard_edges_added_total",
		Help: "Total number of edges created.",
	})

	EdgesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathboard_edges_rejected_total",
		Help: "Total number of edge insertions rejected, labelled by reason.",
	}, []string{"reason"})

	EditsBlocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathboard_edits_blocked_total",
		Help: "Total number of edits refused because a run was in progress.",
	})

	RunsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathboard_runs_started_total",
		Help: "Total number of shortest-path runs initialised.",
	})

	RunsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathboard_runs_completed_total",
		Help: "Total number of runs that reached the done phase.",
	})

	RunsCancelled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathboard_runs_cancelled_total",
		Help: "Total number of runs abandoned before completion, labelled by cause.",
	}, []string{"cause"})

	StepsExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathboard_steps_executed_total",
		Help: "Total number of engine steps performed.",
	})

	StepsPerRun = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathboard_steps_per_run",
		Help:    "Number of steps a completed run needed.",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 250},
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pathboard_active_sessions",
		Help: "Number of open editing sessions.",
	})
)

// Reasons used with EdgesRejected.
const (
	ReasonDuplicate = "duplicate"
	ReasonLoop      = "loop"
	ReasonOther     = "other"
)

// Causes used with RunsCancelled.
const (
	CauseSuperseded = "superseded"
	CauseReset      = "reset"
	CauseClosed     = "closed"
)
