package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward_DefaultLooksAlongPositiveZ(t *testing.T) {
	c := New(mgl64.Vec3{}, 60, 16.0/9.0, 0.1)
	assert.True(t, c.Forward().ApproxEqual(mgl64.Vec3{0, 0, 1}))
	assert.True(t, c.Up().ApproxEqual(mgl64.Vec3{0, 1, 0}))
	assert.True(t, c.Right().ApproxEqual(mgl64.Vec3{-1, 0, 0}))
}

func TestViewportToWorldPoint_CenterAtZeroDepthIsCameraPosition(t *testing.T) {
	c := New(mgl64.Vec3{1, 2, 3}, 60, 4.0/3.0, 0.1)
	c.Rotate(0.7, 0.2)

	p := c.ViewportToWorldPoint(mgl64.Vec3{0.5, 0.5, 0})
	assert.True(t, p.ApproxEqual(mgl64.Vec3{1, 2, 3}))
}

func TestViewportToWorldPoint_CenterLiesOnForwardAxis(t *testing.T) {
	c := New(mgl64.Vec3{0, 1.6, 0}, 60, 16.0/9.0, 0.1)
	c.Rotate(math.Pi/2, 0)

	p := c.ViewportToWorldPoint(mgl64.Vec3{0.5, 0.5, 10})
	assert.True(t, p.ApproxEqualThreshold(mgl64.Vec3{10, 1.6, 0}, 1e-9))
}

func TestViewportToWorldPoint_CornerMatchesFrustum(t *testing.T) {
	c := New(mgl64.Vec3{}, 90, 1, 0.1)

	// При fovy=90 и aspect=1 правый верхний угол на глубине 1 смещён на 1 по обеим осям
	p := c.ViewportToWorldPoint(mgl64.Vec3{1, 1, 1})
	assert.True(t, p.ApproxEqualThreshold(mgl64.Vec3{-1, 1, 1}, 1e-9))
}

func TestViewportToWorldPoint_AgreesWithProjectionMatrix(t *testing.T) {
	c := New(mgl64.Vec3{2, 1.5, -4}, 70, 1.5, 0.1)
	c.Rotate(0.4, -0.15)

	world := c.ViewportToWorldPoint(mgl64.Vec3{0.25, 0.8, 12})

	view := mgl64.LookAtV(c.Position, c.Target(), c.Up())
	proj := mgl64.Perspective(mgl64.DegToRad(c.Fovy), c.Aspect, c.Near, 1000)
	win := mgl64.Project(world, view, proj, 0, 0, 1000, 1000)

	// Project считает окно слева направо, наша ось Right смотрит туда же
	assert.InDelta(t, 250, win.X(), 1e-6)
	assert.InDelta(t, 800, win.Y(), 1e-6)
}

func TestWorldToViewportPoint_RoundTrip(t *testing.T) {
	c := New(mgl64.Vec3{3, 1, 3}, 60, 16.0/9.0, 0.1)
	c.Rotate(-1.1, 0.3)

	in := mgl64.Vec3{0.3, 0.65, 7.5}
	out := c.WorldToViewportPoint(c.ViewportToWorldPoint(in))
	assert.True(t, out.ApproxEqualThreshold(in, 1e-9))
}

func TestRotate_ClampsPitchAndWrapsYaw(t *testing.T) {
	c := New(mgl64.Vec3{}, 60, 1, 0.1)
	c.Rotate(0, 10)
	assert.InDelta(t, MaxPitch, c.Pitch, 1e-12)

	c.Rotate(3*math.Pi, 0)
	assert.InDelta(t, math.Pi, math.Abs(c.Yaw), 1e-9)
}

func TestMount_FollowsCamera(t *testing.T) {
	c := New(mgl64.Vec3{0, 1.6, 0}, 60, 1, 0.1)
	m := Mount{Camera: c, Offset: mgl64.Vec3{0.3, -0.2, 0.5}}

	require.True(t, m.Position().ApproxEqualThreshold(mgl64.Vec3{-0.3, 1.4, 0.5}, 1e-9))

	c.Position = mgl64.Vec3{5, 1.6, 5}
	assert.True(t, m.Position().ApproxEqualThreshold(mgl64.Vec3{4.7, 1.4, 5.5}, 1e-9))
}

func TestMoveFlat_IgnoresPitch(t *testing.T) {
	c := New(mgl64.Vec3{0, 1.6, 0}, 60, 1, 0.1)
	c.Rotate(0, 0.5)
	c.MoveFlat(2, 0)
	assert.True(t, c.Position.ApproxEqualThreshold(mgl64.Vec3{0, 1.6, 2}, 1e-9))
}
