package workout

// Running is a jogging session measured in steps.
type Running struct {
	Training
}

// NewRunning builds a Running workout.
func NewRunning(action int, duration, weight float64) Running {
	return Running{Training: Training{Action: action, Duration: duration, Weight: weight}}
}

// TrainingType implements Workout.
func (Running) TrainingType() string { return "Running" }

// SpentCalories implements Workout.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesSpeedMultiplier*r.MeanSpeed() - runningCaloriesSpeedShift) *
		r.Weight / MInKm * r.Duration * MinInHour
}

// ShowTrainingInfo implements Workout.
func (r Running) ShowTrainingInfo() InfoMessage {
	return newInfoMessage(r, r.Duration)
}
