// Package metrics defines and registers all custom Prometheus metrics for the
// building dashboard. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smarthome"

// ── Routing metrics ───────────────────────────────────────────────────────────

// RouteDecisionsTotal counts route guard outcomes.
// Labels:
//   - tree: the guarded role tree (e.g. "admin")
//   - decision: "allow", "redirect_to_login" or "redirect_to_own_root"
var RouteDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_decisions_total",
		Help:      "Total number of route guard decisions, by role tree and outcome.",
	},
	[]string{"tree", "decision"},
)

// ViewsRenderedTotal counts rendered dashboard views.
// Label:
//   - view: the view name (e.g. "admin.dashboard", "homeowner.devices")
var ViewsRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_rendered_total",
		Help:      "Total number of rendered views, by view name.",
	},
	[]string{"view"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: the requested role, or "unknown" when it was not recognised
//   - result: "success", "rejected", "invalid" or "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// RoleSwitchesTotal counts demo role switches.
// Label:
//   - role: the role switched to
var RoleSwitchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_switches_total",
		Help:      "Total number of role switches, by target role.",
	},
	[]string{"role"},
)

// ── Device metrics ────────────────────────────────────────────────────────────

// DeviceCommandsTotal counts device commands.
// Labels:
//   - device_type: e.g. "thermostat", "light"
//   - result: "applied", "failed" or "dropped"
var DeviceCommandsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "device_commands_total",
		Help:      "Total number of device commands, by device type and result.",
	},
	[]string{"device_type", "result"},
)

// DeviceQueueDepth tracks the current number of commands waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var DeviceQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "device_queue_depth",
		Help:      "Current number of commands pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// DeviceCommandDuration measures how long a command takes from dequeue to persistence.
// Label:
//   - device_type: e.g. "thermostat", "light"
var DeviceCommandDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "device_command_duration_seconds",
		Help:      "Duration of device command processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"device_type"},
)

// ── Work order metrics ────────────────────────────────────────────────────────

// WorkOrderTransitionsTotal counts work order status changes.
// Label:
//   - status: the status moved to (e.g. "in-progress", "completed")
var WorkOrderTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "work_order_transitions_total",
		Help:      "Total number of work order transitions, by resulting status.",
	},
	[]string{"status"},
)
