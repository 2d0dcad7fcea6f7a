package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"

	"example.com/fittracker/internal/events"
)

// MessageWriter is satisfied by KafkaProducer.
type MessageWriter interface {
	WriteMessages(context.Context, string, ...kafka.Message) error
}

var publishedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fittracker",
	Subsystem: "publisher",
	Name:      "events_published_total",
	Help:      "Number of events written to Kafka, labeled by topic.",
}, []string{"topic"})

func init() {
	prometheus.MustRegister(publishedCounter)
}

// SummaryPublisher writes WorkoutSummarized events to a fixed topic.
type SummaryPublisher struct {
	writer MessageWriter
	topic  string
}

// NewSummaryPublisher constructs a SummaryPublisher.
func NewSummaryPublisher(writer MessageWriter, topic string) *SummaryPublisher {
	return &SummaryPublisher{writer: writer, topic: topic}
}

// Publish serialises the event and writes it keyed by package id so summaries
// of the same package land on one partition.
func (p *SummaryPublisher) Publish(ctx context.Context, event events.WorkoutSummarized) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s: %w", events.TypeWorkoutSummarized, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.PackageID),
		Value: body,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(events.TypeWorkoutSummarized)},
			{Key: "workout_type", Value: []byte(event.WorkoutType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, p.topic, msg); err != nil {
		return fmt.Errorf("publish %s to %s: %w", events.TypeWorkoutSummarized, p.topic, err)
	}
	publishedCounter.WithLabelValues(p.topic).Inc()
	return nil
}
