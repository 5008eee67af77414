// Package renderer draws the displaced water surface with raylib.
package renderer

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/shaders"
	"github.com/pthm-cable/ragingsea/water"
)

// WaterSurface renders a subdivided plane displaced by the water shaders.
type WaterSurface struct {
	shader rl.Shader
	model  rl.Model
	locs   map[string]int32

	width    float32
	depth    float32
	segments int

	applied     []water.Uniform
	initialized bool
}

// NewWaterSurface creates a water surface renderer for a width x depth plane
// with the given number of subdivisions per axis.
func NewWaterSurface(width, depth float32, segments int) *WaterSurface {
	return &WaterSurface{
		width:    width,
		depth:    depth,
		segments: segments,
		locs:     make(map[string]int32),
	}
}

// Init builds the mesh and compiles the shaders (must be called after the raylib window is created).
func (w *WaterSurface) Init() error {
	if w.initialized {
		return nil
	}

	w.shader = rl.LoadShaderFromMemory(shaders.WaterVertex, shaders.WaterFragment)
	if w.shader.ID == 0 {
		return fmt.Errorf("compiling water shaders")
	}

	// GenMeshPlane lies in XZ already, so no rotation is needed to lay it flat
	mesh := rl.GenMeshPlane(w.width, w.depth, w.segments, w.segments)
	w.model = rl.LoadModelFromMesh(mesh)
	w.model.Materials.Shader = w.shader

	for _, name := range water.UniformNames() {
		loc := rl.GetShaderLocation(w.shader, name)
		if loc < 0 {
			// The GLSL compiler strips uniforms that do not affect output
			slog.Warn("water uniform not found in shader", "uniform", name)
		}
		w.locs[name] = loc
	}

	w.initialized = true
	slog.Info("water surface ready",
		"width", w.width,
		"depth", w.depth,
		"segments", w.segments,
		"vertices", (w.segments+1)*(w.segments+1),
	)
	return nil
}

// Apply mirrors the parameters into the shader uniforms, uploading only changed slots.
func (w *WaterSurface) Apply(p *water.Params) error {
	uniforms, err := p.Uniforms()
	if err != nil {
		return err
	}
	if !w.initialized {
		return nil
	}

	for i, u := range uniforms {
		if i < len(w.applied) && sameValue(w.applied[i].Value, u.Value) {
			continue
		}
		w.set(u)
	}
	w.applied = uniforms
	return nil
}

// SetTime writes the elapsed time uniform.
func (w *WaterSurface) SetTime(seconds float32) {
	if !w.initialized {
		return
	}
	w.set(water.Uniform{Name: water.UniformTime, Kind: water.KindFloat, Value: []float32{seconds}})
}

func (w *WaterSurface) set(u water.Uniform) {
	loc, ok := w.locs[u.Name]
	if !ok || loc < 0 {
		return
	}
	rl.SetShaderValue(w.shader, loc, u.Value, uniformType(u.Kind))
}

// Draw renders the surface with the given placement. Must be called inside a 3D mode.
func (w *WaterSurface) Draw(position, rotation rl.Vector3, scale float32) {
	if !w.initialized {
		return
	}
	transform := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(scale, scale, scale), rl.MatrixRotateXYZ(rotation)),
		rl.MatrixTranslate(position.X, position.Y, position.Z),
	)
	w.model.Transform = transform
	rl.DrawModel(w.model, rl.Vector3{}, 1, rl.White)
}

// Unload frees resources.
func (w *WaterSurface) Unload() {
	if w.initialized {
		// UnloadModel leaves material shaders alone
		rl.UnloadModel(w.model)
		rl.UnloadShader(w.shader)
		w.applied = nil
		w.initialized = false
	}
}

func uniformType(k water.UniformKind) rl.ShaderUniformDataType {
	switch k {
	case water.KindVec2:
		return rl.ShaderUniformVec2
	case water.KindVec3:
		return rl.ShaderUniformVec3
	default:
		return rl.ShaderUniformFloat
	}
}

func sameValue(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
