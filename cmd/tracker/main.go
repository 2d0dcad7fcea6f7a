package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"example.com/fittracker/internal/config"
	"example.com/fittracker/internal/samples"
	"example.com/fittracker/internal/workout"
)

func main() {
	cfg := config.Load()

	packages := samples.Default()
	if cfg.PackagesFile != "" {
		loaded, err := samples.LoadFile(cfg.PackagesFile)
		if err != nil {
			log.Fatalf("failed to load packages: %v", err)
		}
		packages = loaded
	}

	if err := run(os.Stdout, packages); err != nil {
		log.Fatalf("tracker: %v", err)
	}
}

// run prints one summary line per package and stops at the first invalid package.
func run(w io.Writer, packages []samples.Package) error {
	for i, pkg := range packages {
		training, err := workout.ReadPackage(pkg.WorkoutType, pkg.Data)
		if err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}
		if err := workout.Show(w, training); err != nil {
			return err
		}
	}
	return nil
}
