package workout

import (
	"fmt"
	"io"
)

// InfoMessage is the computed summary of one workout.
type InfoMessage struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

func newInfoMessage(w Workout, duration float64) InfoMessage {
	return InfoMessage{
		TrainingType: w.TrainingType(),
		Duration:     duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}

// Message renders the summary as a single line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Training type: %s; Duration: %.3f h.; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}

// Show writes the summary line of t to w.
func Show(w io.Writer, t Workout) error {
	_, err := fmt.Fprintln(w, t.ShowTrainingInfo().Message())
	return err
}
