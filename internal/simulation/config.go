// Package simulation provides configuration for the field-of-view demo.
// Rules are loaded from data files so each scene can define its own cone and layout.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/sightcone/internal/core/fov"
	"chosenoffset.com/sightcone/internal/core/geom"
	"chosenoffset.com/sightcone/internal/world/grid"
	"chosenoffset.com/sightcone/internal/world/obstacles"
)

// ErrInvalidWindow is returned when the window section can't drive a camera or a loop
var ErrInvalidWindow = errors.New("simulation: window size, scale and tick rate must be positive")

// Config holds everything needed to run a scene
type Config struct {
	// Vision cone and scan cadence
	Perception PerceptionConfig `json:"perception" yaml:"perception"`

	// Obstacles, targets and the agent's start
	Scene SceneConfig `json:"scene" yaml:"scene"`

	// Agent movement
	Movement MovementConfig `json:"movement" yaml:"movement"`

	// Window and camera
	Window WindowConfig `json:"window" yaml:"window"`
}

// PerceptionConfig defines how the agent sees the world
type PerceptionConfig struct {
	ViewRadius            float64 `json:"view_radius" yaml:"view_radius"`                         // Max sight distance in world units
	ViewAngle             float64 `json:"view_angle" yaml:"view_angle"`                           // Full cone width in degrees (0-360)
	MeshResolution        float64 `json:"mesh_resolution" yaml:"mesh_resolution"`                 // Rays per degree
	EdgeResolveIterations int     `json:"edge_resolve_iterations" yaml:"edge_resolve_iterations"` // Binary search steps per edge
	EdgeDistanceThreshold float64 `json:"edge_distance_threshold" yaml:"edge_distance_threshold"` // Distance jump that counts as an edge
	ScanInterval          float64 `json:"scan_interval" yaml:"scan_interval"`                     // Seconds between target scans
	TargetTag             string  `json:"target_tag" yaml:"target_tag"`
	ObstacleLayers        uint32  `json:"obstacle_layers" yaml:"obstacle_layers"` // Bitmask, 0 = all
}

// SceneConfig lists static geometry and targets
type SceneConfig struct {
	Agent   PoseConfig     `json:"agent" yaml:"agent"`
	Walls   []WallConfig   `json:"walls" yaml:"walls"`
	Pillars []PillarConfig `json:"pillars" yaml:"pillars"`
	Grid    *GridConfig    `json:"grid,omitempty" yaml:"grid,omitempty"`
	Targets []TargetConfig `json:"targets" yaml:"targets"`
}

// PoseConfig is an agent start position
type PoseConfig struct {
	X      float64 `json:"x" yaml:"x"`
	Z      float64 `json:"z" yaml:"z"`
	Facing float64 `json:"facing" yaml:"facing"` // Degrees, 0 = +Z, 90 = +X
}

// WallConfig is a straight wall from (X1,Z1) to (X2,Z2)
type WallConfig struct {
	X1    float64 `json:"x1" yaml:"x1"`
	Z1    float64 `json:"z1" yaml:"z1"`
	X2    float64 `json:"x2" yaml:"x2"`
	Z2    float64 `json:"z2" yaml:"z2"`
	Layer uint32  `json:"layer" yaml:"layer"` // Bitmask, 0 = default layer
}

// PillarConfig is a round obstacle
type PillarConfig struct {
	X      float64 `json:"x" yaml:"x"`
	Z      float64 `json:"z" yaml:"z"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// GridConfig is a tile map where '#' blocks sight
type GridConfig struct {
	TileSize float64  `json:"tile_size" yaml:"tile_size"`
	OriginX  float64  `json:"origin_x" yaml:"origin_x"`
	OriginZ  float64  `json:"origin_z" yaml:"origin_z"`
	Rows     []string `json:"rows" yaml:"rows"`
}

// TargetConfig is a candidate the agent may see
type TargetConfig struct {
	Name string  `json:"name" yaml:"name"`
	X    float64 `json:"x" yaml:"x"`
	Z    float64 `json:"z" yaml:"z"`
	Tag  string  `json:"tag" yaml:"tag"` // Empty means the perception target tag
}

// MovementConfig defines how fast the demo agent moves
type MovementConfig struct {
	Speed float64 `json:"speed" yaml:"speed"` // World units per second
}

// WindowConfig defines the demo window and world-to-screen scale
type WindowConfig struct {
	Width          int     `json:"width" yaml:"width"`
	Height         int     `json:"height" yaml:"height"`
	Title          string  `json:"title" yaml:"title"`
	PixelsPerUnit  float64 `json:"pixels_per_unit" yaml:"pixels_per_unit"`
	TicksPerSecond int     `json:"ticks_per_second" yaml:"ticks_per_second"`
}

// DefaultConfig returns a small room with a few targets
func DefaultConfig() *Config {
	return &Config{
		Perception: PerceptionConfig{
			ViewRadius:            10,
			ViewAngle:             90,
			MeshResolution:        1,
			EdgeResolveIterations: 6,
			EdgeDistanceThreshold: 0.5,
			ScanInterval:          fov.DefaultScanInterval,
			TargetTag:             fov.DefaultTargetTag,
		},
		Scene: SceneConfig{
			Agent: PoseConfig{X: 0, Z: 0, Facing: 0},
			Walls: []WallConfig{
				{X1: -3, Z1: 6, X2: 2, Z2: 6},
				{X1: 4, Z1: 2, X2: 4, Z2: 8},
			},
			Pillars: []PillarConfig{
				{X: -5, Z: 3, Radius: 1},
			},
			Targets: []TargetConfig{
				{Name: "sentry", X: 5, Z: 5},
				{Name: "crate", X: 0, Z: 8},
				{Name: "scout", X: -2, Z: 3},
			},
		},
		Movement: MovementConfig{
			Speed: 5,
		},
		Window: WindowConfig{
			Width:          1280,
			Height:         800,
			Title:          "sightcone",
			PixelsPerUnit:  32,
			TicksPerSecond: 60,
		},
	}
}

// LoadConfig loads config from a JSON or YAML file, chosen by extension.
// A missing file yields the defaults; fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse simulation config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}
	return config, nil
}

// Params converts the perception section into engine parameters
func (c *Config) Params() fov.Params {
	return fov.Params{
		Radius:                c.Perception.ViewRadius,
		HalfAngle:             c.Perception.ViewAngle / 2,
		MeshResolution:        c.Perception.MeshResolution,
		EdgeResolveIterations: c.Perception.EdgeResolveIterations,
		EdgeDistanceThreshold: c.Perception.EdgeDistanceThreshold,
	}
}

// Validate checks the perception rules and the scene layout
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Perception.ScanInterval <= 0 {
		return fmt.Errorf("%w: got %v", fov.ErrInvalidInterval, c.Perception.ScanInterval)
	}
	if err := c.Window.validate(); err != nil {
		return err
	}
	if c.Movement.Speed < 0 || math.IsNaN(c.Movement.Speed) {
		return fmt.Errorf("movement speed must not be negative, got %v", c.Movement.Speed)
	}
	for i, p := range c.Scene.Pillars {
		if p.Radius <= 0 {
			return fmt.Errorf("pillar %d: radius must be positive", i)
		}
	}
	if c.Scene.Grid != nil {
		if _, err := c.Scene.Grid.build(); err != nil {
			return err
		}
	}
	return nil
}

// StartPose returns the agent's configured start
func (c *Config) StartPose() fov.Pose {
	return fov.Pose{
		Position: geom.V(c.Scene.Agent.X, c.Scene.Agent.Z),
		Facing:   c.Scene.Agent.Facing,
	}
}

// ObstacleMask returns the configured obstacle layers
func (c *Config) ObstacleMask() fov.LayerMask {
	if c.Perception.ObstacleLayers == 0 {
		return fov.AllLayers
	}
	return fov.LayerMask(c.Perception.ObstacleLayers)
}

// BuildWorld creates the obstacle world described by the scene
func (c *Config) BuildWorld() (*obstacles.World, error) {
	w := obstacles.NewWorld()

	for _, wall := range c.Scene.Walls {
		layer := obstacles.DefaultLayer
		if wall.Layer != 0 {
			layer = fov.LayerMask(wall.Layer)
		}
		w.AddSegmentOn(geom.V(wall.X1, wall.Z1), geom.V(wall.X2, wall.Z2), layer)
	}
	for _, p := range c.Scene.Pillars {
		w.AddCircle(geom.V(p.X, p.Z), p.Radius)
	}
	if c.Scene.Grid != nil {
		g, err := c.Scene.Grid.build()
		if err != nil {
			return nil, err
		}
		w.AddGrid(g)
	}
	for _, t := range c.Scene.Targets {
		tag := t.Tag
		if tag == "" {
			tag = c.Perception.TargetTag
		}
		w.AddTarget(t.Name, geom.V(t.X, t.Z), tag)
	}

	return w, nil
}

func (gc *GridConfig) build() (*grid.Grid, error) {
	size := gc.TileSize
	if size == 0 {
		size = 1
	}
	g, err := grid.Parse(gc.Rows, size)
	if err != nil {
		return nil, fmt.Errorf("scene grid: %w", err)
	}
	g.Origin = geom.V(gc.OriginX, gc.OriginZ)
	return g, nil
}

func (w WindowConfig) validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidWindow, w.Width, w.Height)
	}
	if !(w.PixelsPerUnit > 0) || math.IsInf(w.PixelsPerUnit, 0) {
		return fmt.Errorf("%w: pixels_per_unit %v", ErrInvalidWindow, w.PixelsPerUnit)
	}
	if w.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: ticks_per_second %d", ErrInvalidWindow, w.TicksPerSecond)
	}
	return nil
}
