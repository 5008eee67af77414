// Package game wires the water surface, camera, panel and telemetry into a frame loop.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ragingsea/camera"
	"github.com/pthm-cable/ragingsea/components"
	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/renderer"
	"github.com/pthm-cable/ragingsea/telemetry"
	"github.com/pthm-cable/ragingsea/ui"
	"github.com/pthm-cable/ragingsea/water"
)

// DefaultPresetPath is where S saves when no preset path was given.
const DefaultPresetPath = "preset.yaml"

// statusDuration is how long a HUD status message stays visible, in seconds.
const statusDuration = 2.5

// Options configures a game instance.
type Options struct {
	PresetPath string // Preset to load at start and save to (empty = DefaultPresetPath, not loaded)
	OutputDir  string // Directory for frames.csv, params.csv and config.yaml (empty = disabled)
	LogStats   bool   // Log frame stats via slog every telemetry interval
}

// Game holds the complete demo state.
type Game struct {
	world *ecs.World

	surfaceMapper *ecs.Map2[components.Transform, components.Surface]
	surfaceFilter *ecs.Filter2[components.Transform, components.Surface]

	// Water
	params  water.Params
	surface *renderer.WaterSurface
	dirty   bool // Params changed since the last upload

	// View
	orbit      *camera.Orbit
	dragging   rl.MouseButton
	isDragging bool

	// UI
	panel *ui.TuningPanel
	hud   *ui.HUD

	status      string
	statusUntil float64

	// Time
	clock   *Clock
	elapsed float64
	frame   int64

	// Telemetry
	frames        *telemetry.FrameCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	lastFlush     float64
	hudStats      telemetry.FrameStats

	presetPath string
	clearColor rl.Color

	// Window dimensions
	screenWidth, screenHeight float32
}

// config returns the global configuration.
func (g *Game) config() *config.Config {
	return config.Cfg()
}

// NewGame creates a game instance. The raylib window must already be open.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	world := ecs.NewWorld()
	g := &Game{
		world:         world,
		surfaceMapper: ecs.NewMap2[components.Transform, components.Surface](world),
		surfaceFilter: ecs.NewFilter2[components.Transform, components.Surface](world),
		hud:           ui.NewHUD(),
		clock:         NewClock(),
		frames:        telemetry.NewFrameCollector(cfg.Telemetry.FrameWindow),
		logStats:      opts.LogStats,
		presetPath:    opts.PresetPath,
		clearColor:    ui.ColorFromHex(cfg.Screen.ClearColor),
		screenWidth:   cfg.Derived.ScreenW32,
		screenHeight:  cfg.Derived.ScreenH32,
		dirty:         true,
	}

	g.params = configParams(cfg)

	if g.presetPath == "" {
		g.presetPath = DefaultPresetPath
	} else if err := g.loadPreset(); err != nil {
		return nil, err
	}

	g.surface = renderer.NewWaterSurface(
		float32(cfg.Geometry.Width),
		float32(cfg.Geometry.Depth),
		cfg.Geometry.Segments,
	)
	if err := g.surface.Init(); err != nil {
		return nil, fmt.Errorf("initializing water surface: %w", err)
	}
	g.spawnSurface("water", g.surface, components.Transform{Scale: 1})

	g.orbit = newOrbit(cfg)

	g.panel = ui.NewTuningPanel(
		int32(cfg.Screen.Width),
		int32(cfg.Panel.Width),
		ui.DefaultRows(),
	)
	g.panel.SetVisible(cfg.Panel.Visible)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		g.surface.Unload()
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	slog.Info("game ready",
		"preset", g.presetPath,
		"output_dir", om.Dir(),
		"segments", cfg.Geometry.Segments,
		"surfaces", g.surfaceCount(),
	)
	return g, nil
}

// loadPreset overlays the preset file on the current params.
// A missing file is not an error; it becomes the save target.
func (g *Game) loadPreset() error {
	if _, err := os.Stat(g.presetPath); errors.Is(err, os.ErrNotExist) {
		slog.Info("preset not found, starting from config", "preset", g.presetPath)
		return nil
	}
	p, err := water.LoadPreset(g.presetPath, g.params)
	if err != nil {
		return fmt.Errorf("loading preset: %w", err)
	}
	g.params = p
	slog.Info("preset loaded", "preset", g.presetPath)
	return nil
}

// configParams returns the configured water params, clamped into range.
func configParams(cfg *config.Config) water.Params {
	p, err := water.FromConfigClamped(cfg.Water)
	if err != nil {
		slog.Warn("config water params out of range, clamped", "error", err)
	}
	return p
}

// newOrbit builds the orbit camera from config.
func newOrbit(cfg *config.Config) *camera.Orbit {
	c := cfg.Camera
	ctl := cfg.Controls
	return camera.New(
		vec3(c.Position),
		vec3(c.Target),
		cfg.Derived.FOV32,
		cfg.Derived.Aspect,
		float32(c.Near),
		float32(c.Far),
		camera.Options{
			EnableDamping: ctl.EnableDamping,
			DampingFactor: float32(ctl.DampingFactor),
			RotateSpeed:   float32(ctl.RotateSpeed),
			ZoomSpeed:     float32(ctl.ZoomSpeed),
			PanSpeed:      float32(ctl.PanSpeed),
			MinDistance:   float32(ctl.MinDistance),
			MaxDistance:   float32(ctl.MaxDistance),
		},
	)
}

func vec3(v [3]float64) camera.Vec3 {
	return camera.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}

// Update samples the clock, processes input and mirrors params into the shader.
func (g *Game) Update() {
	g.frames.StartFrame()
	g.frames.StartPhase(telemetry.PhaseInput)

	g.elapsed = g.clock.Elapsed()
	g.handleInput()
	g.orbit.Update()

	g.frames.StartPhase(telemetry.PhaseUniforms)
	g.syncUniforms()
}

// syncUniforms writes uTime and, when params changed, the parameter uniforms.
func (g *Game) syncUniforms() {
	t := float32(g.elapsed)
	query := g.surfaceFilter.Query()
	for query.Next() {
		_, s := query.Get()
		if s.Renderer == nil {
			continue
		}
		s.Renderer.SetTime(t)
		if g.dirty {
			if err := s.Renderer.Apply(&g.params); err != nil {
				slog.Error("failed to apply water params", "surface", s.Name, "error", err)
			}
		}
	}
	g.dirty = false
}

// setStatus shows a transient HUD message.
func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.elapsed + statusDuration
}

// Frame returns the number of frames drawn.
func (g *Game) Frame() int64 {
	return g.frame
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	query := g.surfaceFilter.Query()
	for query.Next() {
		_, s := query.Get()
		if s.Renderer != nil {
			s.Renderer.Unload()
		}
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
