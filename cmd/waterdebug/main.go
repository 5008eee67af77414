// Water debug tool - renders the water surface at a fixed time to a PNG file for inspection.
//
// Usage: go run ./cmd/waterdebug -time 2.5 -preset calm.yaml -out water.png
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/renderer"
	"github.com/pthm-cable/ragingsea/ui"
	"github.com/pthm-cable/ragingsea/water"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	presetPath := flag.String("preset", "", "Water preset to render (empty = config params)")
	outPath := flag.String("out", "water.png", "Output PNG path")
	width := flag.Int("width", 512, "Render width")
	height := flag.Int("height", 512, "Render height")
	t := flag.Float64("time", 0, "Value of uTime in seconds")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	params, err := water.FromConfigClamped(cfg.Water)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config water params out of range, clamped: %v\n", err)
	}
	if *presetPath != "" {
		p, err := water.LoadPreset(*presetPath, params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load preset: %v\n", err)
			os.Exit(1)
		}
		params = p
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Water Debug")
	defer rl.CloseWindow()

	surface := renderer.NewWaterSurface(float32(cfg.Geometry.Width), float32(cfg.Geometry.Depth), cfg.Geometry.Segments)
	if err := surface.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init water surface: %v\n", err)
		os.Exit(1)
	}
	defer surface.Unload()

	if err := surface.Apply(&params); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to apply params: %v\n", err)
		os.Exit(1)
	}
	surface.SetTime(float32(*t))

	pos := cfg.Camera.Position
	target := cfg.Camera.Target
	cam := rl.Camera3D{
		Position:   rl.Vector3{X: float32(pos[0]), Y: float32(pos[1]), Z: float32(pos[2])},
		Target:     rl.Vector3{X: float32(target[0]), Y: float32(target[1]), Z: float32(target[2])},
		Up:         rl.Vector3{Y: 1},
		Fovy:       cfg.Derived.FOV32,
		Projection: rl.CameraPerspective,
	}
	aspect := float32(*width) / float32(*height)
	proj := rl.MatrixPerspective(cfg.Derived.FOV32*math.Pi/180, aspect, float32(cfg.Camera.Near), float32(cfg.Camera.Far))

	// Create render texture
	target2D := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target2D)

	// Render water to texture
	rl.BeginTextureMode(target2D)
	rl.ClearBackground(ui.ColorFromHex(cfg.Screen.ClearColor))
	rl.BeginMode3D(cam)
	rl.SetMatrixProjection(proj)
	surface.Draw(rl.Vector3{}, rl.Vector3{}, 1)
	rl.EndMode3D()
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target2D.Texture)
	rl.ImageFlipVertical(img)

	// Export to PNG
	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Water rendered to: %s (%dx%d, t=%.2f)\n", *outPath, *width, *height, *t)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
