package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"example.com/fittracker/internal/domain"
	"example.com/fittracker/internal/events"
	"example.com/fittracker/internal/observability"
)

type summaryPublisher interface {
	Publish(context.Context, events.WorkoutSummarized) error
}

// SummaryHandler computes a summary for every sensor package and publishes it.
type SummaryHandler struct {
	service   *domain.Service
	publisher summaryPublisher
	now       func() time.Time
}

// NewSummaryHandler constructs a SummaryHandler.
func NewSummaryHandler(service *domain.Service, publisher summaryPublisher) *SummaryHandler {
	return &SummaryHandler{
		service:   service,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Handle implements Handler. Invalid packages are returned wrapped in ErrRejected;
// publish failures are returned as is so the message is redelivered.
func (h *SummaryHandler) Handle(ctx context.Context, msg Message) error {
	if msg.EventType != "" && msg.EventType != events.TypeSensorPackage {
		err := fmt.Errorf("unexpected event_type %q", msg.EventType)
		observability.RecordRejected(err)
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}

	var pkg events.SensorPackage
	if err := json.Unmarshal(msg.Payload, &pkg); err != nil {
		observability.RecordRejected(err)
		return fmt.Errorf("%w: decode sensor package: %v", ErrRejected, err)
	}

	packageID := pkg.PackageID
	if packageID == "" {
		packageID = msg.Key
	}
	if packageID == "" {
		packageID = uuid.NewString()
	}

	summary, err := h.service.Summarize(domain.SummarizeInput{WorkoutType: pkg.WorkoutType, Data: pkg.Data})
	if err != nil {
		return fmt.Errorf("%w: package %s: %w", ErrRejected, packageID, err)
	}

	return h.publisher.Publish(ctx, events.WorkoutSummarized{
		SummaryID:    uuid.NewString(),
		PackageID:    packageID,
		UserID:       pkg.UserID,
		WorkoutType:  summary.WorkoutType,
		TrainingType: summary.TrainingType,
		DurationH:    summary.Duration,
		DistanceKm:   summary.Distance,
		MeanSpeedKmh: summary.Speed,
		Calories:     summary.Calories,
		Message:      summary.Message(),
		ComputedAt:   h.now(),
	})
}
