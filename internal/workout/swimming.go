package workout

// Swimming is a pool session. Action counts strokes; speed comes from the laps.
type Swimming struct {
	Training
	LengthPool float64
	CountPool  int
}

// NewSwimming builds a Swimming workout.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		Training:   Training{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

// TrainingType implements Workout.
func (Swimming) TrainingType() string { return "Swimming" }

// Distance implements Workout using the stroke length.
func (s Swimming) Distance() float64 {
	return distance(s.Action, SwimmingLenStep)
}

// MeanSpeed implements Workout from pool length and laps; Action is ignored.
func (s Swimming) MeanSpeed() float64 {
	return divide(s.LengthPool*float64(s.CountPool)/MInKm, s.Duration)
}

// SpentCalories implements Workout.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}

// ShowTrainingInfo implements Workout.
func (s Swimming) ShowTrainingInfo() InfoMessage {
	return newInfoMessage(s, s.Duration)
}
