// Package observability exposes Prometheus collectors shared by the API and the consumer.
package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/fittracker/internal/workout"
)

// Rejection reasons used as label values.
const (
	ReasonUnknownType    = "unknown_type"
	ReasonArgumentCount  = "argument_count"
	ReasonInvalidReading = "invalid_reading"
	ReasonMalformed      = "malformed"
)

var (
	workoutsComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "workouts",
		Name:      "computed_total",
		Help:      "Number of workout summaries computed, labeled by activity code.",
	}, []string{"workout_type"})

	workoutsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "workouts",
		Name:      "rejected_total",
		Help:      "Number of sensor packages rejected before computation, labeled by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(workoutsComputed, workoutsRejected)
}

// RecordComputed counts a summary computed for the given activity code.
func RecordComputed(code string) {
	workoutsComputed.WithLabelValues(code).Inc()
}

// RecordRejected counts a rejected sensor package, deriving the reason from err.
func RecordRejected(err error) {
	workoutsRejected.WithLabelValues(RejectionReason(err)).Inc()
}

// RejectionReason maps workout errors onto metric label values.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, workout.ErrUnknownWorkoutType):
		return ReasonUnknownType
	case errors.Is(err, workout.ErrArgumentCount):
		return ReasonArgumentCount
	case errors.Is(err, workout.ErrInvalidReading):
		return ReasonInvalidReading
	default:
		return ReasonMalformed
	}
}
