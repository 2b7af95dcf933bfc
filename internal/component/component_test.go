package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestLineRender_SetPositionIgnoresOutOfRange(t *testing.T) {
	var l LineRender
	l.SetPosition(0, mgl64.Vec3{1, 2, 3})
	l.SetPosition(1, mgl64.Vec3{4, 5, 6})
	l.SetPosition(2, mgl64.Vec3{9, 9, 9})
	l.SetPosition(-1, mgl64.Vec3{9, 9, 9})

	assert.Equal(t, [2]mgl64.Vec3{{1, 2, 3}, {4, 5, 6}}, l.Points)
}

func TestRigidBody_AddForceAccumulates(t *testing.T) {
	b := &RigidBody{Mass: 2}
	b.AddForce(mgl64.Vec3{1, 0, 0})
	b.AddForce(mgl64.Vec3{0, 0, -3})

	assert.Equal(t, mgl64.Vec3{1, 0, -3}, b.ConsumeForce())
	assert.Equal(t, mgl64.Vec3{}, b.PendingForce())
}

func TestRigidBody_KinematicIgnoresForce(t *testing.T) {
	b := &RigidBody{Mass: 1, Kinematic: true}
	b.AddForce(mgl64.Vec3{0, 100, 0})
	assert.Equal(t, mgl64.Vec3{}, b.PendingForce())
}

func TestBoxCollider_Bounds(t *testing.T) {
	c := &BoxCollider{HalfExtents: mgl64.Vec3{1, 0.5, 2}}
	lo, hi := c.Bounds(mgl64.Vec3{0, 1, 0})
	assert.Equal(t, mgl64.Vec3{-1, 0.5, -2}, lo)
	assert.Equal(t, mgl64.Vec3{1, 1.5, 2}, hi)
}
