// Package workout computes distance, speed and calorie statistics for tracked workouts.
package workout

import "math"

// Workout is the capability shared by every workout variant.
type Workout interface {
	// TrainingType returns the display name of the variant, e.g. "SportsWalking".
	TrainingType() string
	// Distance returns the covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned kilocalories.
	SpentCalories() float64
	// ShowTrainingInfo computes the summary of the workout.
	ShowTrainingInfo() InfoMessage
}

// Training holds the sensor readings common to every workout variant.
// Duration is used as a divisor and must be non-zero.
type Training struct {
	Action   int
	Duration float64
	Weight   float64
}

// Distance returns Action steps converted to kilometers.
func (t Training) Distance() float64 {
	return distance(t.Action, LenStep)
}

// MeanSpeed returns Distance over Duration. It panics with ErrDivisionByZero when Duration is zero.
func (t Training) MeanSpeed() float64 {
	return divide(t.Distance(), t.Duration)
}

// SpentCalories has no generic formula; every variant supplies its own.
func (t Training) SpentCalories() float64 {
	panic(ErrNotImplemented)
}

func distance(action int, lenStep float64) float64 {
	return float64(action) * lenStep / MInKm
}

func divide(a, b float64) float64 {
	if b == 0 {
		panic(ErrDivisionByZero)
	}
	return a / b
}

// floorDiv returns floor(a / b) computed through fmod, which keeps results
// identical to the reference figures near integer boundaries.
func floorDiv(a, b float64) float64 {
	if b == 0 {
		panic(ErrDivisionByZero)
	}
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
