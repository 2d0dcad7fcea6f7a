package observability

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"example.com/fittracker/internal/workout"
)

func TestRecordComputed(t *testing.T) {
	before := testutil.ToFloat64(workoutsComputed.WithLabelValues("RUN"))
	RecordComputed("RUN")
	require.InDelta(t, before+1, testutil.ToFloat64(workoutsComputed.WithLabelValues("RUN")), 0.0001)
}

func TestRecordRejected(t *testing.T) {
	_, err := workout.Create("XYZ")
	before := testutil.ToFloat64(workoutsRejected.WithLabelValues(ReasonUnknownType))
	RecordRejected(err)
	require.InDelta(t, before+1, testutil.ToFloat64(workoutsRejected.WithLabelValues(ReasonUnknownType)), 0.0001)
}

func TestRejectionReason(t *testing.T) {
	_, arity := workout.Create(workout.CodeRunning, 1)
	_, invalid := workout.Validate(workout.CodeRunning, []float64{1, 0, 70})

	require.Equal(t, ReasonArgumentCount, RejectionReason(arity))
	require.Equal(t, ReasonInvalidReading, RejectionReason(fmt.Errorf("wrapped: %w", invalid)))
	require.Equal(t, ReasonMalformed, RejectionReason(errors.New("bad json")))
}
