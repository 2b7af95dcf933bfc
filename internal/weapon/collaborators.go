package weapon

import (
	"go-raycast-shooter/internal/interfaces"
	"go-raycast-shooter/internal/scheduler"

	"github.com/go-gl/mathgl/mgl64"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Camera,Raycaster,LineRenderer,AudioEmitter,Input,Clock,Scheduler,Anchor

// Camera переводит точки вьюпорта в мир и знает направление взгляда.
type Camera interface {
	ViewportToWorldPoint(p mgl64.Vec3) mgl64.Vec3
	Forward() mgl64.Vec3
}

// Raycaster - запрос к физической сцене.
type Raycaster interface {
	Raycast(origin, direction mgl64.Vec3, maxDistance float64) (interfaces.RaycastHit, bool)
}

// LineRenderer - отрезок лазера.
type LineRenderer interface {
	SetPosition(index int, p mgl64.Vec3)
	SetVisible(visible bool)
}

// AudioEmitter проигрывает звук выстрела.
type AudioEmitter interface {
	Play()
}

// Input сообщает, была ли кнопка огня нажата в этом кадре (фронт, а не удержание).
type Input interface {
	FirePressed() bool
}

// Clock - игровое время в секундах.
type Clock interface {
	Now() float64
}

// Scheduler ставит отложенные задачи в очередь игрового цикла.
type Scheduler interface {
	After(delay float64, fn func()) scheduler.TaskID
	Cancel(id scheduler.TaskID) bool
}

// Anchor - точка в мире, к которой привязано начало лазера (дуло).
type Anchor interface {
	Position() mgl64.Vec3
}
