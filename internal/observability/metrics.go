package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthFailures counts rejected requests by failure reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_auth_failures_total",
		Help: "Total number of authentication failures by reason",
	}, []string{"reason"})

	// ValidationFailures counts rejected mutations by resource type.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_validation_failures_total",
		Help: "Total number of validation failures by resource",
	}, []string{"resource"})

	// ResourceWrites counts committed mutations by resource and operation.
	ResourceWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_resource_writes_total",
		Help: "Total number of committed resource mutations",
	}, []string{"resource", "operation"})

	// ConflictRollbacks counts transactions rolled back on uniqueness violations.
	ConflictRollbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_conflict_rollbacks_total",
		Help: "Total number of transactions rolled back due to uniqueness conflicts",
	}, []string{"resource"})
)
