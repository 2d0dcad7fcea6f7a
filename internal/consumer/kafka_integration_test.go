//go:build integration

package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkaContainer "github.com/testcontainers/testcontainers-go/modules/kafka"

	"example.com/fittracker/internal/domain"
	"example.com/fittracker/internal/events"
	"example.com/fittracker/internal/publisher"
)

func TestKafkaSensorPackageProducesSummary(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	kafkaC, err := kafkaContainer.RunContainer(ctx, testcontainers.WithEnv(map[string]string{
		"KAFKA_AUTO_CREATE_TOPICS_ENABLE": "true",
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kafkaC.Terminate(context.Background()) })

	brokers, err := kafkaC.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	broker := brokers[0]

	const sensorTopic = "workout_sensor_packages"
	const summaryTopic = "workout_summaries"

	conn, err := kafka.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.CreateTopics(
		kafka.TopicConfig{Topic: sensorTopic, NumPartitions: 1, ReplicationFactor: 1},
		kafka.TopicConfig{Topic: summaryTopic, NumPartitions: 1, ReplicationFactor: 1},
	))

	producer := publisher.NewKafkaProducer([]string{broker}, 10*time.Second)
	defer producer.Close()
	handler := NewSummaryHandler(domain.NewService(), publisher.NewSummaryPublisher(producer, summaryTopic))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		GroupID:     "fittracker-integration",
		Topic:       sensorTopic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	defer reader.Close()

	consumerCtx, stop := context.WithCancel(ctx)
	defer stop()
	go func() {
		_ = NewProcessor(reader, handler).Run(consumerCtx)
	}()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  sensorTopic,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	payload, err := json.Marshal(events.SensorPackage{
		PackageID:   "pkg-int",
		WorkoutType: "RUN",
		Data:        []float64{15000, 1, 75},
		RecordedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte("pkg-int"),
		Value:   payload,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(events.TypeSensorPackage)}},
	}))

	summaries := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		GroupID:     "fittracker-integration-summaries",
		Topic:       summaryTopic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	defer summaries.Close()

	readCtx, readCancel := context.WithTimeout(ctx, time.Minute)
	defer readCancel()
	msg, err := summaries.ReadMessage(readCtx)
	require.NoError(t, err)

	var summary events.WorkoutSummarized
	require.NoError(t, json.Unmarshal(msg.Value, &summary))
	require.Equal(t, "pkg-int", summary.PackageID)
	require.Equal(t, "Running", summary.TrainingType)
	require.InDelta(t, 699.75, summary.Calories, 1e-9)
}
