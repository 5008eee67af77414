package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ragingsea/components"
	"github.com/pthm-cable/ragingsea/renderer"
)

// spawnSurface adds a drawable water surface to the scene.
func (g *Game) spawnSurface(name string, r *renderer.WaterSurface, tr components.Transform) ecs.Entity {
	s := components.Surface{Name: name, Renderer: r, Visible: true}
	return g.surfaceMapper.NewEntity(&tr, &s)
}

// surfaceCount returns the number of surfaces in the scene.
func (g *Game) surfaceCount() int {
	n := 0
	query := g.surfaceFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// drawSurfaces draws every visible surface at its transform. Must be called inside a 3D mode.
func (g *Game) drawSurfaces() {
	query := g.surfaceFilter.Query()
	for query.Next() {
		tr, s := query.Get()
		if !s.Visible || s.Renderer == nil {
			continue
		}
		s.Renderer.Draw(toVector3(tr.Position), toVector3(tr.Rotation), tr.Scale)
	}
}

func toVector3(v components.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}
