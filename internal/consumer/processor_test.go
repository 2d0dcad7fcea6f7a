package consumer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestProcessorCommitsOnSuccess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload := []byte(`{"package_id":"abc","workout_type":"RUN","data":[15000,1,75]}`)
	msg := kafka.Message{
		Topic:     "workout_sensor_packages",
		Partition: 0,
		Offset:    10,
		Key:       []byte("abc"),
		Time:      time.Now().UTC(),
		Value:     payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("workout.sensor_package")},
		},
	}

	reader := &stubReader{messages: []kafka.Message{msg}}
	handler := &stubHandler{}
	before := testutil.ToFloat64(processedCounter.WithLabelValues("workout_sensor_packages"))

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 1, reader.commitCalls)
	require.Equal(t, "workout.sensor_package", handler.last.EventType)
	require.Equal(t, "abc", handler.last.Key)
	require.JSONEq(t, string(payload), string(handler.last.Payload))
	require.InDelta(t, before+1, testutil.ToFloat64(processedCounter.WithLabelValues("workout_sensor_packages")), 0.0001)

	var gauge dto.Metric
	require.NoError(t, lastMessageGauge.WithLabelValues("workout_sensor_packages").Write(&gauge))
	require.Equal(t, float64(msg.Time.Unix()), gauge.GetGauge().GetValue())
}

func TestProcessorSkipsCommitOnHandlerError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &stubReader{messages: []kafka.Message{{Topic: "retry_topic", Offset: 20, Value: []byte(`{}`)}}}
	handler := &stubHandler{err: errors.New("broker unavailable")}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 0, reader.commitCalls)
	require.InDelta(t, 1, testutil.ToFloat64(handlerErrorCounter.WithLabelValues("retry_topic")), 0.0001)
}

func TestProcessorCommitsRejectedMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &stubReader{messages: []kafka.Message{{Topic: "rejected_topic", Offset: 30, Value: []byte(`{}`)}}}
	handler := &stubHandler{err: fmt.Errorf("%w: unknown workout type", ErrRejected)}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))
	require.ErrorIs(t, processor.Run(ctx), context.Canceled)

	require.Equal(t, 1, reader.commitCalls)
	require.InDelta(t, 1, testutil.ToFloat64(rejectedCounter.WithLabelValues("rejected_topic")), 0.0001)
}

func TestProcessorCommitsUndecodableMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &stubReader{messages: []kafka.Message{
		{Topic: "garbage_topic", Offset: 1, Value: nil},
		{Topic: "garbage_topic", Offset: 2, Value: []byte("not json")},
	}}
	handler := &stubHandler{}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))
	require.ErrorIs(t, processor.Run(ctx), context.Canceled)

	require.Equal(t, 0, handler.calls)
	require.Equal(t, 2, reader.commitCalls)
	require.InDelta(t, 2, testutil.ToFloat64(decodeErrorCounter.WithLabelValues("garbage_topic")), 0.0001)
}

func TestProcessorStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &stubReader{messages: []kafka.Message{{Value: []byte(`{}`)}}}
	handler := &stubHandler{}

	err := NewProcessor(reader, handler).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, handler.calls)
}

type stubReader struct {
	messages    []kafka.Message
	index       int
	commitCalls int
}

func (r *stubReader) FetchMessage(context.Context) (kafka.Message, error) {
	if r.index >= len(r.messages) {
		return kafka.Message{}, context.Canceled
	}
	msg := r.messages[r.index]
	r.index++
	return msg, nil
}

func (r *stubReader) CommitMessages(_ context.Context, _ ...kafka.Message) error {
	r.commitCalls++
	return nil
}

func (r *stubReader) Close() error { return nil }

type stubHandler struct {
	calls int
	err   error
	last  Message
}

func (h *stubHandler) Handle(_ context.Context, msg Message) error {
	h.calls++
	h.last = msg
	return h.err
}

type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Log(string(p))
	return len(p), nil
}
