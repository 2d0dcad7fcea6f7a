// Package events defines the Kafka payloads exchanged by the tracker services.
package events

import "time"

// Event type header values.
const (
	TypeSensorPackage     = "workout.sensor_package"
	TypeWorkoutSummarized = "workout.summarized"
)

// SensorPackage is the inbound message carrying raw readings for one workout.
type SensorPackage struct {
	PackageID   string    `json:"package_id"`
	UserID      string    `json:"user_id,omitempty"`
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
	RecordedAt  time.Time `json:"recorded_at,omitzero"`
}

// WorkoutSummarized is emitted once a sensor package has been turned into a summary.
type WorkoutSummarized struct {
	SummaryID    string    `json:"summary_id"`
	PackageID    string    `json:"package_id"`
	UserID       string    `json:"user_id,omitempty"`
	WorkoutType  string    `json:"workout_type"`
	TrainingType string    `json:"training_type"`
	DurationH    float64   `json:"duration_h"`
	DistanceKm   float64   `json:"distance_km"`
	MeanSpeedKmh float64   `json:"mean_speed_kmh"`
	Calories     float64   `json:"calories"`
	Message      string    `json:"message"`
	ComputedAt   time.Time `json:"computed_at"`
}
