package fov

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInterval is returned for a non-positive scan interval
var ErrInvalidInterval = errors.New("fov: scan interval must be positive")

// Scanner runs a task on a fixed interval driven by the host's update loop.
// It never spawns goroutines; the task only runs from inside Advance.
type Scanner struct {
	interval float64
	elapsed  float64
	running  bool
	task     func()
}

// NewScanner creates a stopped scanner that calls task every interval seconds
func NewScanner(interval float64, task func()) (*Scanner, error) {
	if !(interval > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidInterval, interval)
	}
	return &Scanner{interval: interval, task: task}, nil
}

// Start begins counting a fresh interval. The first run happens one full
// interval after Start.
func (s *Scanner) Start() {
	s.elapsed = 0
	s.running = true
}

// Stop cancels the periodic task. Pending time is discarded.
func (s *Scanner) Stop() {
	s.running = false
	s.elapsed = 0
}

// Running reports whether the scanner is active
func (s *Scanner) Running() bool {
	return s.running
}

// Interval returns the period in seconds
func (s *Scanner) Interval() float64 {
	return s.interval
}

// Advance moves the clock forward by dt seconds and runs the task at most
// once, however many intervals elapsed. Leftover time carries into the next
// interval. It reports whether the task ran.
func (s *Scanner) Advance(dt float64) bool {
	if !s.running || dt <= 0 {
		return false
	}

	s.elapsed += dt
	if s.elapsed < s.interval {
		return false
	}
	s.elapsed = math.Mod(s.elapsed, s.interval)
	if s.task != nil {
		s.task()
	}
	return true
}
