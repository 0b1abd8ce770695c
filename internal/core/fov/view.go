package fov

import (
	"errors"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/sightcone/internal/core/geom"
	"chosenoffset.com/sightcone/internal/logger"
)

var (
	ErrNoPoseSource      = errors.New("fov: pose source is required")
	ErrNoTargetDiscovery = errors.New("fov: target discovery is required")
)

const (
	// DefaultScanInterval is the delay between target scans in seconds
	DefaultScanInterval = 0.2
	// DefaultTargetTag is the classification tag that marks candidates
	DefaultTargetTag = "target"
)

// ViewConfig wires a View to its collaborators
type ViewConfig struct {
	Params       Params
	Poses        PoseSource
	Obstacles    ObstacleQuery
	Targets      TargetDiscovery
	ObstacleMask LayerMask // Zero means AllLayers
	TargetTag    string    // Empty means DefaultTargetTag
	ScanInterval float64   // Seconds; zero means DefaultScanInterval
	Logger       *logrus.Entry
}

// View is one agent's field of view. The host calls Rebuild every frame and
// Tick every update; target scans run on their own, coarser interval.
type View struct {
	engine    *Engine
	poses     PoseSource
	discovery TargetDiscovery
	tag       string
	scanner   *Scanner

	pose     Pose
	polygon  Polygon
	visible  VisibleSet
	listener func(VisibleSet)

	log *logrus.Entry
}

// NewView validates the configuration. The periodic scan is not running until Start.
func NewView(cfg ViewConfig) (*View, error) {
	if cfg.Poses == nil {
		return nil, ErrNoPoseSource
	}
	if cfg.Targets == nil {
		return nil, ErrNoTargetDiscovery
	}

	mask := cfg.ObstacleMask
	if mask == 0 {
		mask = AllLayers
	}
	engine, err := NewEngine(cfg.Params, cfg.Obstacles, mask)
	if err != nil {
		return nil, err
	}

	v := &View{
		engine:    engine,
		poses:     cfg.Poses,
		discovery: cfg.Targets,
		tag:       cfg.TargetTag,
		log:       cfg.Logger,
		visible:   NewVisibleSet(nil),
	}
	if v.tag == "" {
		v.tag = DefaultTargetTag
	}
	if v.log == nil {
		v.log = logger.Component("fov")
	}

	interval := cfg.ScanInterval
	if interval == 0 {
		interval = DefaultScanInterval
	}
	v.scanner, err = NewScanner(interval, func() { v.Scan() })
	if err != nil {
		return nil, err
	}

	v.pose = v.poses.Pose()
	v.log.WithFields(logrus.Fields{
		"radius":     cfg.Params.Radius,
		"half_angle": cfg.Params.HalfAngle,
		"rays":       cfg.Params.RayCount() + 1,
		"scan_every": interval,
	}).Debug("field of view created")

	return v, nil
}

// SetScanListener registers a sink that receives every new visible set
func (v *View) SetScanListener(fn func(VisibleSet)) {
	v.listener = fn
}

// Start begins periodic target scans
func (v *View) Start() {
	v.scanner.Start()
}

// Stop cancels periodic target scans. Call before discarding the view.
func (v *View) Stop() {
	v.scanner.Stop()
}

// Running reports whether periodic scans are active
func (v *View) Running() bool {
	return v.scanner.Running()
}

// Tick advances the scan timer by dt seconds
func (v *View) Tick(dt float64) {
	v.scanner.Advance(dt)
}

// Rebuild re-reads the pose and regenerates the visibility polygon
func (v *View) Rebuild() Polygon {
	v.pose = v.poses.Pose()
	v.polygon = v.engine.BuildPolygon(v.pose)
	return v.polygon
}

// Scan re-reads the pose, queries candidates and replaces the visible set
func (v *View) Scan() VisibleSet {
	v.pose = v.poses.Pose()
	candidates := v.discovery.QueryRange(v.pose.Position, v.engine.params.Radius, v.tag)
	next := NewVisibleSet(v.engine.FilterTargets(v.pose, candidates))

	if !next.Equal(v.visible) {
		v.log.WithFields(logrus.Fields{
			"facing":     v.pose.Facing,
			"candidates": len(candidates),
			"visible":    next.Len(),
		}).Debug("visible targets changed")
	}

	v.visible = next
	if v.listener != nil {
		v.listener(next)
	}
	return next
}

// Engine exposes the underlying stateless engine
func (v *View) Engine() *Engine {
	return v.engine
}

// Pose returns the pose used by the latest rebuild or scan
func (v *View) Pose() Pose {
	return v.pose
}

// Polygon returns the latest visibility polygon
func (v *View) Polygon() Polygon {
	return v.polygon
}

// VisibleTargets returns the latest scan's snapshot
func (v *View) VisibleTargets() VisibleSet {
	return v.visible
}

// Radius returns the sight distance
func (v *View) Radius() float64 {
	return v.engine.params.Radius
}

// HalfAngle returns half the cone width in degrees
func (v *View) HalfAngle() float64 {
	return v.engine.params.HalfAngle
}

// ViewAngle returns the full cone width in degrees
func (v *View) ViewAngle() float64 {
	return v.engine.params.ViewAngle()
}

// DirFromAngle converts an angle to a direction. Local angles are relative to
// the current facing.
func (v *View) DirFromAngle(deg float64, global bool) geom.Vec3 {
	if !global {
		deg += v.pose.Facing
	}
	return geom.DirFromAngle(deg)
}
