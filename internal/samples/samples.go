// Package samples provides sensor packages for the tracker driver.
package samples

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Package is one batch of raw sensor values tagged with an activity code.
type Package struct {
	WorkoutType string    `yaml:"workout_type"`
	Data        []float64 `yaml:"data"`
}

type file struct {
	Packages []Package `yaml:"packages"`
}

// Default returns the built-in demo packages.
func Default() []Package {
	return []Package{
		{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
		{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// LoadFile reads packages from a YAML document of the form
//
//	packages:
//	  - workout_type: RUN
//	    data: [15000, 1, 75]
func LoadFile(path string) ([]Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading packages file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing packages file: %w", err)
	}
	return f.Packages, nil
}
