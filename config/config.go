// Package config provides configuration loading and access for the water demo.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Controls  ControlsConfig  `yaml:"controls"`
	Geometry  GeometryConfig  `yaml:"geometry"`
	Water     WaterConfig     `yaml:"water"`
	Panel     PanelConfig     `yaml:"panel"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Resizable  bool   `yaml:"resizable"`
	HighDPI    bool   `yaml:"high_dpi"`
	MSAA       bool   `yaml:"msaa"`
	Title      string `yaml:"title"`
	ClearColor string `yaml:"clear_color"`
}

// CameraConfig holds perspective camera parameters.
type CameraConfig struct {
	FOV      float64    `yaml:"fov"` // Vertical field of view in degrees
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
	Position [3]float64 `yaml:"position"`
	Target   [3]float64 `yaml:"target"`
}

// ControlsConfig holds orbit control parameters.
type ControlsConfig struct {
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float64 `yaml:"damping_factor"`
	RotateSpeed   float64 `yaml:"rotate_speed"`
	ZoomSpeed     float64 `yaml:"zoom_speed"`
	PanSpeed      float64 `yaml:"pan_speed"`
	MinDistance   float64 `yaml:"min_distance"`
	MaxDistance   float64 `yaml:"max_distance"`
}

// GeometryConfig holds the water plane dimensions.
type GeometryConfig struct {
	Width    float64 `yaml:"width"`
	Depth    float64 `yaml:"depth"`
	Segments int     `yaml:"segments"` // Subdivisions along each axis
}

// WaterConfig holds the initial shader parameters.
type WaterConfig struct {
	BigWavesElevation   float64    `yaml:"big_waves_elevation"`
	BigWavesFrequency   [2]float64 `yaml:"big_waves_frequency"`
	BigWaveSpeed        float64    `yaml:"big_wave_speed"`
	SmallWavesElevation float64    `yaml:"small_waves_elevation"`
	SmallWavesFrequency float64    `yaml:"small_waves_frequency"`
	SmallWavesSpeed     float64    `yaml:"small_waves_speed"`
	SmallIterations     int        `yaml:"small_iterations"`
	DepthColor          string     `yaml:"depth_color"`
	SurfaceColor        string     `yaml:"surface_color"`
	ColorOffset         float64    `yaml:"color_offset"`
	ColorMultiplier     float64    `yaml:"color_multiplier"`
}

// PanelConfig holds tuning panel settings.
type PanelConfig struct {
	Width   int  `yaml:"width"`
	Visible bool `yaml:"visible"`
}

// TelemetryConfig holds frame timing parameters.
type TelemetryConfig struct {
	FrameWindow int     `yaml:"frame_window"` // Frames in the rolling stats window
	LogInterval float64 `yaml:"log_interval"` // Seconds between stats log lines
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FOV32     float32 // Camera.FOV as float32
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	Aspect    float32 // Screen.Width / Screen.Height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the renderer cannot work with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Geometry.Segments < 1 {
		return fmt.Errorf("geometry.segments must be at least 1, got %d", c.Geometry.Segments)
	}
	if c.Geometry.Width <= 0 || c.Geometry.Depth <= 0 {
		return fmt.Errorf("geometry size must be positive, got %gx%g", c.Geometry.Width, c.Geometry.Depth)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes invalid: near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Controls.DampingFactor < 0 || c.Controls.DampingFactor > 1 {
		return fmt.Errorf("controls.damping_factor must be in [0, 1], got %g", c.Controls.DampingFactor)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.FOV32 = float32(c.Camera.FOV)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.Aspect = c.Derived.ScreenW32 / c.Derived.ScreenH32

	if c.Telemetry.FrameWindow < 1 {
		c.Telemetry.FrameWindow = 120
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
