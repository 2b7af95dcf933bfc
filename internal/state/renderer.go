// internal/state/renderer.go
package state

import (
	"go-raycast-shooter/internal/app"
	"go-raycast-shooter/internal/assets"
	"go-raycast-shooter/internal/config"
	"go-raycast-shooter/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SceneRenderer рисует ECS полигона в 3D. Вызывается между BeginMode3D и EndMode3D.
type SceneRenderer struct {
	game   *app.Game
	models *assets.ModelManager
}

func NewSceneRenderer(game *app.Game, models *assets.ModelManager) *SceneRenderer {
	return &SceneRenderer{game: game, models: models}
}

// Camera3D переводит камеру игры в камеру raylib.
func (r *SceneRenderer) Camera3D() rl.Camera3D {
	cam := r.game.Camera
	return rl.Camera3D{
		Position:   vecToRL(cam.Position),
		Target:     vecToRL(cam.Target()),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(cam.Fovy),
		Projection: rl.CameraPerspective,
	}
}

func (r *SceneRenderer) Draw() {
	ecs := r.game.ECS
	rl.DrawGrid(60, 1)

	for id, renderable := range ecs.Renderables {
		if renderable.Hidden {
			continue
		}
		tr, hasTr := ecs.Transforms[id]
		collider, hasCollider := ecs.Colliders[id]
		if !hasTr || !hasCollider {
			continue
		}

		col := renderable.Color
		if flash := r.game.VisualEffectSystem.Flash(id); flash > 0 {
			col = render.LerpColor(col, config.FlashColor, flash)
		}
		pos := vecToRL(tr.Position)
		wire := colorToRL(render.DarkenColor(col))

		if model, ok := r.models.GetModel(renderable.Model); ok {
			rl.DrawModel(model, pos, 1, colorToRL(col))
			if renderable.Wire {
				rl.DrawModelWires(model, pos, 1, wire)
			}
			continue
		}
		size := collider.HalfExtents.Mul(2)
		w, h, l := float32(size.X()), float32(size.Y()), float32(size.Z())
		rl.DrawCube(pos, w, h, l, colorToRL(col))
		if renderable.Wire {
			rl.DrawCubeWires(pos, w, h, l, wire)
		}
	}

	// Лазер
	laser := r.game.Laser()
	if laser.Visible {
		start, end := vecToRL(laser.Points[0]), vecToRL(laser.Points[1])
		rl.DrawLine3D(start, end, colorToRL(laser.Color))
		rl.DrawSphere(end, 0.04, colorToRL(laser.Color))
	}
}
