// internal/system/scene_query.go
package system

import (
	"go-raycast-shooter/internal/interfaces"
	"go-raycast-shooter/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// SceneQuery отвечает на лучевые запросы оружия: физика даёт точку и тело,
// система урона - мишень.
type SceneQuery struct {
	world  *physics.World
	damage *DamageSystem
}

func NewSceneQuery(world *physics.World, damage *DamageSystem) *SceneQuery {
	return &SceneQuery{world: world, damage: damage}
}

func (q *SceneQuery) Raycast(origin, direction mgl64.Vec3, maxDistance float64) (interfaces.RaycastHit, bool) {
	hit, ok := q.world.Raycast(origin, direction, maxDistance)
	if !ok {
		return interfaces.RaycastHit{}, false
	}
	result := interfaces.RaycastHit{
		Point:    hit.Point,
		Normal:   hit.Normal,
		Distance: hit.Distance,
		Entity:   hit.Entity,
		Target:   q.damage.Target(hit.Entity),
	}
	// *RigidBody(nil) в интерфейсе дал бы не-nil значение
	if hit.Body != nil {
		result.Body = hit.Body
	}
	return result, true
}
