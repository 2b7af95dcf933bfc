// internal/app/range.go
package app

import (
	"image/color"

	"go-raycast-shooter/internal/component"
	"go-raycast-shooter/internal/defs"
	"go-raycast-shooter/internal/entity"
	"go-raycast-shooter/internal/types"
)

// SpawnRange создаёт сущности по расстановке полигона и возвращает их ID.
// Ссылки на типы уже проверены при загрузке, неизвестные пропускаются.
func SpawnRange(ecs *entity.ECS, def *defs.RangeDefinition) []types.EntityID {
	ids := make([]types.EntityID, 0, len(def.Placements))
	for _, p := range def.Placements {
		kind, ok := def.Kind(p.Kind)
		if !ok {
			continue
		}
		ids = append(ids, spawnObject(ecs, kind, p))
	}
	return ids
}

func spawnObject(ecs *entity.ECS, kind defs.TargetKind, p defs.Placement) types.EntityID {
	id := ecs.NewEntity()
	name := p.Name
	if name == "" {
		name = kind.ID
	}
	ecs.Names[id] = name
	ecs.Transforms[id] = &component.Transform{Position: p.Position.Vec()}
	ecs.Colliders[id] = &component.BoxCollider{
		HalfExtents: kind.Size.Vec().Mul(0.5),
		Enabled:     true,
	}
	ecs.Renderables[id] = &component.Renderable{
		Model: kind.ID,
		Color: color.RGBA{kind.Color[0], kind.Color[1], kind.Color[2], 255},
		Wire:  kind.Wire,
	}

	if kind.HasBody() {
		ecs.Bodies[id] = &component.RigidBody{
			Mass:        kind.Mass,
			Drag:        kind.Drag,
			Restitution: kind.Restitution,
			Friction:    kind.Friction,
			UseGravity:  kind.Gravity,
			Kinematic:   kind.Kinematic,
		}
	}
	if kind.Destructible() {
		ecs.Shootables[id] = &component.Shootable{
			Health:    kind.Health,
			MaxHealth: kind.Health,
			Active:    true,
			Kind:      kind.ID,
		}
	}
	return id
}
