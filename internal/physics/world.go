// internal/physics/world.go
package physics

import (
	"math"

	"go-raycast-shooter/internal/component"
	"go-raycast-shooter/internal/entity"
	"go-raycast-shooter/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// FixedStep - шаг симуляции, как в Unity (50 Гц)
	FixedStep = 0.02
	// MaxStepsPerUpdate ограничивает догоняющие шаги после долгого кадра
	MaxStepsPerUpdate = 5

	epsilon = 1e-9
)

// Hit - результат пересечения луча с коллайдером.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Entity   types.EntityID
	Body     *component.RigidBody // nil для статики и кинематики
}

// World - физическая сцена поверх ECS: коллайдеры-боксы и твёрдые тела.
type World struct {
	ecs         *entity.ECS
	Gravity     mgl64.Vec3
	GroundY     float64
	accumulator float64
}

// NewWorld создаёт мир с земной гравитацией и землёй на y=0.
func NewWorld(ecs *entity.ECS) *World {
	return &World{
		ecs:     ecs,
		Gravity: mgl64.Vec3{0, -9.81, 0},
	}
}

// Raycast ищет ближайшее попадание луча в пределах maxDistance.
// Направление нормализуется; нулевое направление ничего не находит.
// Если луч начинается внутри бокса, возвращается точка выхода.
func (w *World) Raycast(origin, direction mgl64.Vec3, maxDistance float64) (Hit, bool) {
	if direction.Len() < epsilon || maxDistance <= 0 {
		return Hit{}, false
	}
	dir := direction.Normalize()

	var best Hit
	found := false
	for id, collider := range w.ecs.Colliders {
		if !collider.Enabled {
			continue
		}
		tr, ok := w.ecs.Transforms[id]
		if !ok {
			continue
		}
		lo, hi := collider.Bounds(tr.Position)
		t, normal, ok := intersectBox(origin, dir, lo, hi)
		if !ok || t > maxDistance {
			continue
		}
		// При равных расстояниях берём меньший ID, чтобы результат не зависел от порядка map
		if found && (t > best.Distance || (t == best.Distance && id > best.Entity)) {
			continue
		}
		best = Hit{
			Point:    origin.Add(dir.Mul(t)),
			Normal:   normal,
			Distance: t,
			Entity:   id,
		}
		found = true
	}
	if !found {
		return Hit{}, false
	}
	if body, ok := w.ecs.Bodies[best.Entity]; ok && !body.Kinematic {
		best.Body = body
	}
	return best, true
}

// intersectBox - slab-тест луча с AABB. Возвращает расстояние и наружную нормаль грани.
func intersectBox(origin, dir, lo, hi mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	var nearNormal, farNormal mgl64.Vec3

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < epsilon {
			// Луч параллелен плоскостям этой оси
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		var n1, n2 mgl64.Vec3
		n1[axis] = -1
		n2[axis] = 1
		if t1 > t2 {
			t1, t2 = t2, t1
			n1, n2 = n2, n1
		}
		if t1 > tNear {
			tNear = t1
			nearNormal = n1
		}
		if t2 < tFar {
			tFar = t2
			farNormal = n2
		}
		if tNear > tFar {
			return 0, mgl64.Vec3{}, false
		}
	}

	if tFar < 0 {
		return 0, mgl64.Vec3{}, false
	}
	if tNear >= 0 {
		return tNear, nearNormal, true
	}
	return tFar, farNormal, true
}

// Update продвигает симуляцию фиксированными шагами.
func (w *World) Update(deltaTime float64) {
	w.accumulator += deltaTime
	steps := 0
	for w.accumulator >= FixedStep && steps < MaxStepsPerUpdate {
		w.Step(FixedStep)
		w.accumulator -= FixedStep
		steps++
	}
	if steps == MaxStepsPerUpdate {
		w.accumulator = 0
	}
}

// Step - один шаг интегрирования всех тел.
func (w *World) Step(dt float64) {
	for id, body := range w.ecs.Bodies {
		force := body.ConsumeForce()
		if body.Kinematic {
			continue
		}
		tr, ok := w.ecs.Transforms[id]
		if !ok {
			continue
		}
		if collider, ok := w.ecs.Colliders[id]; ok && !collider.Enabled {
			continue // уничтоженная мишень
		}

		if body.Mass > 0 {
			body.Velocity = body.Velocity.Add(force.Mul(dt / body.Mass))
		}
		if body.UseGravity {
			body.Velocity = body.Velocity.Add(w.Gravity.Mul(dt))
		}
		if body.Drag > 0 {
			body.Velocity = body.Velocity.Mul(1 / (1 + body.Drag*dt))
		}
		tr.Position = tr.Position.Add(body.Velocity.Mul(dt))

		w.resolveGround(id, tr, body, dt)
	}
}

func (w *World) resolveGround(id types.EntityID, tr *component.Transform, body *component.RigidBody, dt float64) {
	halfY := 0.0
	if collider, ok := w.ecs.Colliders[id]; ok {
		halfY = collider.HalfExtents.Y()
	}
	bottom := tr.Position.Y() - halfY
	if bottom >= w.GroundY {
		return
	}
	tr.Position[1] = w.GroundY + halfY
	if body.Velocity.Y() < 0 {
		body.Velocity[1] = -body.Velocity.Y() * body.Restitution
	}
	if body.Friction > 0 {
		k := 1 / (1 + body.Friction*dt)
		body.Velocity[0] *= k
		body.Velocity[2] *= k
	}
}
