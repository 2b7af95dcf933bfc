// internal/entity/ecs.go
package entity

import (
	"go-raycast-shooter/internal/component"
	"go-raycast-shooter/internal/types"
)

type ECS struct {
	NextID        types.EntityID
	Names         map[types.EntityID]string
	Transforms    map[types.EntityID]*component.Transform
	Colliders     map[types.EntityID]*component.BoxCollider
	Bodies        map[types.EntityID]*component.RigidBody
	Shootables    map[types.EntityID]*component.Shootable
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Renderables   map[types.EntityID]*component.Renderable
	Lines         map[types.EntityID]*component.LineRender
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Names:         make(map[types.EntityID]string),
		Transforms:    make(map[types.EntityID]*component.Transform),
		Colliders:     make(map[types.EntityID]*component.BoxCollider),
		Bodies:        make(map[types.EntityID]*component.RigidBody),
		Shootables:    make(map[types.EntityID]*component.Shootable),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Lines:         make(map[types.EntityID]*component.LineRender),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Names, id)
	delete(ecs.Transforms, id)
	delete(ecs.Colliders, id)
	delete(ecs.Bodies, id)
	delete(ecs.Shootables, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Renderables, id)
	delete(ecs.Lines, id)
}

// Name возвращает имя сущности или пустую строку.
func (ecs *ECS) Name(id types.EntityID) string {
	return ecs.Names[id]
}
