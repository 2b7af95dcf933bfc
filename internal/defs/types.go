// internal/defs/types.go
package defs

import "github.com/go-gl/mathgl/mgl64"

// Vec3 - точка или размер в YAML как [x, y, z].
type Vec3 [3]float64

func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

// RGB - цвет в YAML как [r, g, b].
type RGB [3]uint8

// TargetKind описывает тип объекта на полигоне.
type TargetKind struct {
	ID          string  `yaml:"id"`
	Size        Vec3    `yaml:"size"`        // Полный размер бокса
	Health      int     `yaml:"health"`      // 0 - неразрушаемый
	Mass        float64 `yaml:"mass"`        // 0 - статика без тела
	Kinematic   bool    `yaml:"kinematic"`   // Тело есть, но силы на него не действуют
	Gravity     bool    `yaml:"gravity"`
	Drag        float64 `yaml:"drag"`
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
	Color       RGB     `yaml:"color"`
	Wire        bool    `yaml:"wire"` // Обводка рёбер
}

// Destructible сообщает, можно ли разрушить объект выстрелами.
func (k TargetKind) Destructible() bool {
	return k.Health > 0
}

// HasBody сообщает, нужен ли объекту RigidBody.
func (k TargetKind) HasBody() bool {
	return k.Mass > 0 || k.Kinematic
}

// Placement - объект заданного типа в точке полигона.
type Placement struct {
	Kind     string `yaml:"kind"`
	Name     string `yaml:"name"`
	Position Vec3   `yaml:"position"` // Центр бокса
}

// RangeDefinition - весь полигон: типы объектов, их расстановка и точка появления игрока.
type RangeDefinition struct {
	Name       string       `yaml:"name"`
	Spawn      Vec3         `yaml:"spawn"`    // Позиция ног игрока
	SpawnYaw   float64      `yaml:"spawnYaw"` // Градусы, 0 - вдоль +Z
	Kinds      []TargetKind `yaml:"kinds"`
	Placements []Placement  `yaml:"placements"`
}

// Kind ищет тип по идентификатору.
func (r *RangeDefinition) Kind(id string) (TargetKind, bool) {
	for _, k := range r.Kinds {
		if k.ID == id {
			return k, true
		}
	}
	return TargetKind{}, false
}
