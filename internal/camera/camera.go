// internal/camera/camera.go
package camera

import (
	"math"

	"go-raycast-shooter/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxPitch - ограничение наклона камеры, чтобы базис не вырождался
var MaxPitch = mgl64.DegToRad(89)

// WorldUp - ось "вверх" мира
var WorldUp = mgl64.Vec3{0, 1, 0}

// Camera - перспективная камера от первого лица.
// Yaw = 0 смотрит вдоль +Z, положительный Pitch поднимает взгляд.
type Camera struct {
	Position mgl64.Vec3
	Yaw      float64 // Радианы
	Pitch    float64 // Радианы
	Fovy     float64 // Вертикальный угол обзора в градусах
	Aspect   float64 // Ширина / высота
	Near     float64
}

// New создаёт камеру с заданной позицией и параметрами проекции.
func New(position mgl64.Vec3, fovy, aspect, near float64) *Camera {
	return &Camera{
		Position: position,
		Fovy:     fovy,
		Aspect:   aspect,
		Near:     near,
	}
}

// Forward - направление взгляда в мировых координатах (единичный вектор).
func (c *Camera) Forward() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	return mgl64.Vec3{
		math.Sin(c.Yaw) * cp,
		math.Sin(c.Pitch),
		math.Cos(c.Yaw) * cp,
	}
}

// Right - правая ось камеры.
func (c *Camera) Right() mgl64.Vec3 {
	return c.Forward().Cross(WorldUp).Normalize()
}

// Up - верхняя ось камеры.
func (c *Camera) Up() mgl64.Vec3 {
	return c.Right().Cross(c.Forward()).Normalize()
}

// Target - точка на единичном расстоянии перед камерой.
func (c *Camera) Target() mgl64.Vec3 {
	return c.Position.Add(c.Forward())
}

func (c *Camera) halfExtents() (halfW, halfH float64) {
	halfH = math.Tan(mgl64.DegToRad(c.Fovy) / 2)
	halfW = halfH * c.Aspect
	return halfW, halfH
}

// ViewportToWorldPoint переводит точку вьюпорта в мир.
// X и Y нормализованы в 0..1 (0.5, 0.5 - центр кадра),
// Z - расстояние от камеры вдоль оси взгляда в мировых единицах.
func (c *Camera) ViewportToWorldPoint(p mgl64.Vec3) mgl64.Vec3 {
	halfW, halfH := c.halfExtents()
	forward, right, up := c.Forward(), c.Right(), c.Up()
	dir := forward.
		Add(right.Mul((2*p.X() - 1) * halfW)).
		Add(up.Mul((2*p.Y() - 1) * halfH))
	return c.Position.Add(dir.Mul(p.Z()))
}

// WorldToViewportPoint - обратное преобразование. Z - глубина вдоль оси взгляда,
// для точек позади камеры она отрицательная.
func (c *Camera) WorldToViewportPoint(w mgl64.Vec3) mgl64.Vec3 {
	halfW, halfH := c.halfExtents()
	d := w.Sub(c.Position)
	depth := d.Dot(c.Forward())
	if math.Abs(depth) < 1e-12 {
		return mgl64.Vec3{0.5, 0.5, 0}
	}
	x := d.Dot(c.Right()) / depth / halfW
	y := d.Dot(c.Up()) / depth / halfH
	return mgl64.Vec3{(x + 1) / 2, (y + 1) / 2, depth}
}

// LocalToWorld переводит смещение в осях камеры (вправо, вверх, вперёд) в мировую точку.
func (c *Camera) LocalToWorld(offset mgl64.Vec3) mgl64.Vec3 {
	return c.Position.
		Add(c.Right().Mul(offset.X())).
		Add(c.Up().Mul(offset.Y())).
		Add(c.Forward().Mul(offset.Z()))
}

// Rotate поворачивает камеру; наклон ограничен MaxPitch.
func (c *Camera) Rotate(deltaYaw, deltaPitch float64) {
	c.Yaw = utils.NormalizeAngle(c.Yaw + deltaYaw)
	c.Pitch = mgl64.Clamp(c.Pitch+deltaPitch, -MaxPitch, MaxPitch)
}

// MoveFlat двигает камеру по горизонтали: forward вдоль взгляда, strafe вправо.
func (c *Camera) MoveFlat(forward, strafe float64) {
	heading := mgl64.Vec3{math.Sin(c.Yaw), 0, math.Cos(c.Yaw)}
	right := heading.Cross(WorldUp).Normalize()
	c.Position = c.Position.Add(heading.Mul(forward)).Add(right.Mul(strafe))
}

// Mount - точка, закреплённая за камерой (например, дуло оружия).
type Mount struct {
	Camera *Camera
	Offset mgl64.Vec3 // Вправо, вверх, вперёд
}

// Position возвращает текущую мировую позицию точки крепления.
func (m Mount) Position() mgl64.Vec3 {
	return m.Camera.LocalToWorld(m.Offset)
}
