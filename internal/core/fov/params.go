package fov

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRadius     = errors.New("fov: radius must be a positive finite number")
	ErrInvalidHalfAngle  = errors.New("fov: half angle must be within [0, 180] degrees")
	ErrInvalidResolution = errors.New("fov: mesh resolution must produce at least one ray")
	ErrInvalidIterations = errors.New("fov: edge resolve iterations must not be negative")
	ErrInvalidThreshold  = errors.New("fov: edge distance threshold must be a non-negative number")
)

// MaxRays caps the angular steps of one sweep
const MaxRays = 1 << 16

// Params holds the immutable view cone configuration
type Params struct {
	Radius                float64 // Max sight distance
	HalfAngle             float64 // Degrees either side of facing; the cone is twice this wide
	MeshResolution        float64 // Rays per degree
	EdgeResolveIterations int     // Binary search steps per silhouette edge
	EdgeDistanceThreshold float64 // Hit distance jump that counts as an edge
}

// DefaultParams mirrors a typical top-down setup
func DefaultParams() Params {
	return Params{
		Radius:                10,
		HalfAngle:             45,
		MeshResolution:        1,
		EdgeResolveIterations: 6,
		EdgeDistanceThreshold: 0.5,
	}
}

// ViewAngle is the full cone width in degrees
func (p Params) ViewAngle() float64 {
	return p.HalfAngle * 2
}

// RayCount is the number of angular steps in a sweep. A sweep casts RayCount+1 rays.
func (p Params) RayCount() int {
	return int(math.RoundToEven(p.ViewAngle() * p.MeshResolution))
}

// Step is the angle between adjacent sweep rays in degrees
func (p Params) Step() float64 {
	return p.ViewAngle() / float64(p.RayCount())
}

// MaxEdgeError bounds how far a refined edge point can be from the true edge, in degrees
func (p Params) MaxEdgeError() float64 {
	return p.Step() / math.Pow(2, float64(p.EdgeResolveIterations))
}

// Validate rejects misconfigured parameters rather than clamping them
func (p Params) Validate() error {
	if math.IsNaN(p.Radius) || math.IsInf(p.Radius, 0) || p.Radius <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, p.Radius)
	}
	if math.IsNaN(p.HalfAngle) || p.HalfAngle < 0 || p.HalfAngle > 180 {
		return fmt.Errorf("%w: got %v", ErrInvalidHalfAngle, p.HalfAngle)
	}
	if math.IsNaN(p.MeshResolution) || math.IsInf(p.MeshResolution, 0) || p.MeshResolution <= 0 {
		return fmt.Errorf("%w: %v rays/deg over %v deg", ErrInvalidResolution, p.MeshResolution, p.ViewAngle())
	}
	// checked as a float so RayCount never converts an out-of-range value
	if n := p.ViewAngle() * p.MeshResolution; n > MaxRays || p.RayCount() < 1 {
		return fmt.Errorf("%w: %v rays/deg over %v deg, at most %d rays", ErrInvalidResolution, p.MeshResolution, p.ViewAngle(), MaxRays)
	}
	if p.EdgeResolveIterations < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, p.EdgeResolveIterations)
	}
	if math.IsNaN(p.EdgeDistanceThreshold) || p.EdgeDistanceThreshold < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, p.EdgeDistanceThreshold)
	}
	return nil
}
