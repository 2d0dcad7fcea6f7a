package workout

import (
	"fmt"
	"math"
	"sort"
)

// Activity codes accepted by the factory.
const (
	CodeSwimming      = "SWM"
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
)

type constructor struct {
	trainingType string
	arity        int
	build        func(args []float64) Workout
}

var registry = map[string]constructor{
	CodeSwimming: {
		trainingType: "Swimming",
		arity:        5,
		build: func(a []float64) Workout {
			return NewSwimming(int(a[0]), a[1], a[2], a[3], int(a[4]))
		},
	},
	CodeRunning: {
		trainingType: "Running",
		arity:        3,
		build: func(a []float64) Workout {
			return NewRunning(int(a[0]), a[1], a[2])
		},
	},
	CodeSportsWalking: {
		trainingType: "SportsWalking",
		arity:        4,
		build: func(a []float64) Workout {
			return NewSportsWalking(int(a[0]), a[1], a[2], a[3])
		},
	},
}

// Create builds the workout registered for code from positional sensor values.
// Values follow the variant's field order, common fields first:
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, length_pool, count_pool
//
// Integer fields are truncated. Field ranges are not checked here; use Validate.
func Create(code string, args ...float64) (Workout, error) {
	ctor, ok := registry[code]
	if !ok {
		return nil, &UnknownWorkoutTypeError{Code: code}
	}
	if len(args) != ctor.arity {
		return nil, &ArgumentCountError{Code: code, Want: ctor.arity, Got: len(args)}
	}
	return ctor.build(args), nil
}

// ReadPackage builds a workout from one sensor package.
func ReadPackage(code string, data []float64) (Workout, error) {
	return Create(code, data...)
}

// Codes lists the supported activity codes in lexical order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// TrainingTypeFor returns the display name registered for code.
func TrainingTypeFor(code string) (string, bool) {
	ctor, ok := registry[code]
	return ctor.trainingType, ok
}

// Arity returns the number of sensor values expected for code.
func Arity(code string) (int, bool) {
	ctor, ok := registry[code]
	return ctor.arity, ok
}

// maxCount bounds the integer readings so they convert to int exactly.
const maxCount = math.MaxInt32

// Validate checks a sensor package against the ranges the formulas rely on and
// returns the workout built from it. Durations, weights, heights and pool lengths
// must be positive; action and count_pool must be whole numbers in [0, maxCount].
// Create itself performs no such checks.
func Validate(code string, data []float64) (Workout, error) {
	training, err := Create(code, data...)
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: value %d is not finite", ErrInvalidReading, i)
		}
	}
	if err := checkCount("action", data[0]); err != nil {
		return nil, err
	}
	switch {
	case data[1] <= 0:
		return nil, fmt.Errorf("%w: duration must be > 0", ErrInvalidReading)
	case data[2] <= 0:
		return nil, fmt.Errorf("%w: weight must be > 0", ErrInvalidReading)
	}
	switch code {
	case CodeSportsWalking:
		if data[3] <= 0 {
			return nil, fmt.Errorf("%w: height must be > 0", ErrInvalidReading)
		}
	case CodeSwimming:
		if data[3] <= 0 {
			return nil, fmt.Errorf("%w: length_pool must be > 0", ErrInvalidReading)
		}
		if err := checkCount("count_pool", data[4]); err != nil {
			return nil, err
		}
	}
	return training, nil
}

func checkCount(name string, v float64) error {
	switch {
	case v < 0:
		return fmt.Errorf("%w: %s must be >= 0", ErrInvalidReading, name)
	case v > maxCount:
		return fmt.Errorf("%w: %s must be <= %d", ErrInvalidReading, name, maxCount)
	case v != math.Trunc(v):
		return fmt.Errorf("%w: %s must be a whole number", ErrInvalidReading, name)
	}
	return nil
}
