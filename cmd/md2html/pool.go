package main

import (
	"fmt"
	"runtime"
)

// maxAutoWorkers caps the GOMAXPROCS-based worker count.
const maxAutoWorkers = 8

// resolveWorkers determines the number of conversion workers.
// Priority: explicit flag > MD2HTML_WORKERS > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return envWorkers
	}

	// Conversion is CPU-bound; GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}

// validateWorkers rejects negative worker counts. Zero means auto.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: --workers must be >= 0, got %d", ErrUsage, n)
	}
	return nil
}
