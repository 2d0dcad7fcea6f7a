package workout

// Conversion factors shared by every workout variant.
const (
	// LenStep is the distance in meters covered by one step.
	LenStep = 0.65
	// SwimmingLenStep is the distance in meters covered by one stroke.
	SwimmingLenStep = 1.38
	// MInKm is the number of meters in a kilometer.
	MInKm = 1000
	// MinInHour is the number of minutes in an hour.
	MinInHour = 60
)

const (
	runningCaloriesSpeedMultiplier = 18.0
	runningCaloriesSpeedShift      = 20.0

	walkingCaloriesWeightMultiplier = 0.035
	walkingCaloriesSpeedMultiplier  = 0.029

	swimmingCaloriesSpeedShift       = 1.1
	swimmingCaloriesWeightMultiplier = 2.0
)
