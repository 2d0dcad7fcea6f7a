package workout

// SportsWalking is a race walking session. Height is in centimeters.
type SportsWalking struct {
	Training
	Height float64
}

// NewSportsWalking builds a SportsWalking workout.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		Training: Training{Action: action, Duration: duration, Weight: weight},
		Height:   height,
	}
}

// TrainingType implements Workout.
func (SportsWalking) TrainingType() string { return "SportsWalking" }

// SpentCalories implements Workout. The squared speed is floor-divided by the raw
// height in centimeters.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier + floorDiv(speed*speed, w.Height)*walkingCaloriesSpeedMultiplier) *
		w.Weight * w.Duration * MinInHour
}

// ShowTrainingInfo implements Workout.
func (w SportsWalking) ShowTrainingInfo() InfoMessage {
	return newInfoMessage(w, w.Duration)
}
