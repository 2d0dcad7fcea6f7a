// Package domain orchestrates workout computations for the service entry points.
package domain

import (
	"example.com/fittracker/internal/observability"
	"example.com/fittracker/internal/workout"
)

// SummarizeInput captures one sensor package as received from a transport.
type SummarizeInput struct {
	WorkoutType string
	Data        []float64
}

// Summary pairs a computed InfoMessage with the activity code it came from.
type Summary struct {
	WorkoutType string
	workout.InfoMessage
}

// Service validates sensor packages and computes their summaries.
type Service struct{}

// NewService constructs a Service.
func NewService() *Service {
	return &Service{}
}

// Summarize validates input, builds the workout and computes its summary.
// Input errors match workout.ErrUnknownWorkoutType, workout.ErrArgumentCount
// or workout.ErrInvalidReading.
func (s *Service) Summarize(input SummarizeInput) (Summary, error) {
	training, err := workout.Validate(input.WorkoutType, input.Data)
	if err != nil {
		observability.RecordRejected(err)
		return Summary{}, err
	}

	info := training.ShowTrainingInfo()
	observability.RecordComputed(input.WorkoutType)
	return Summary{WorkoutType: input.WorkoutType, InfoMessage: info}, nil
}

// WorkoutType describes one supported activity code.
type WorkoutType struct {
	Code         string
	TrainingType string
	Arity        int
}

// WorkoutTypes lists the supported activity codes.
func (s *Service) WorkoutTypes() []WorkoutType {
	codes := workout.Codes()
	out := make([]WorkoutType, 0, len(codes))
	for _, code := range codes {
		name, _ := workout.TrainingTypeFor(code)
		arity, _ := workout.Arity(code)
		out = append(out, WorkoutType{Code: code, TrainingType: name, Arity: arity})
	}
	return out
}
