package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkflowTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docflow_workflow_transitions_total",
			Help: "Committed document status transitions",
		},
		[]string{"from", "to"},
	)

	WorkflowRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docflow_workflow_rejections_total",
			Help: "Documents sent back to editing, by the stage they were rejected at",
		},
		[]string{"stage"},
	)

	WorkflowConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docflow_workflow_conflicts_total",
			Help: "Operations that lost a concurrent update race",
		},
	)

	NotificationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docflow_notifications_dispatched_total",
			Help: "Outbox events handled by the dispatcher",
		},
		[]string{"kind"},
	)

	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docflow_notification_failures_total",
			Help: "Sink failures swallowed by the dispatcher",
		},
		[]string{"sink"},
	)

	DispatchQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docflow_dispatch_queue_depth",
			Help: "Events waiting in the dispatcher queue",
		},
	)

	DeadlineReminders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docflow_deadline_reminders_total",
			Help: "Deadline reminder events published",
		},
	)
)
