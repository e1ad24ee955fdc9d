package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/gallery/internal/core/geom"
)

func newTestCamera() *Camera {
	c := New(75, 1280.0/800.0, 1, 1000)
	c.Position = geom.V(0, 10, 0)
	return c
}

func TestDefaultOrientationLooksDownNegativeZ(t *testing.T) {
	c := newTestCamera()
	f := c.Forward()
	assert.InDelta(t, 0, f.X, 1e-12)
	assert.InDelta(t, 0, f.Y, 1e-12)
	assert.InDelta(t, -1, f.Z, 1e-12)

	u := c.Up()
	assert.InDelta(t, 1, u.Y, 1e-12)
}

func TestBasisIsOrthonormal(t *testing.T) {
	c := newTestCamera()
	c.Yaw = 1.1
	c.Pitch = -0.4

	f, r, u := c.Forward(), c.Right(), c.Up()
	assert.InDelta(t, 1, f.Length(), 1e-12)
	assert.InDelta(t, 1, r.Length(), 1e-12)
	assert.InDelta(t, 1, u.Length(), 1e-12)
	assert.InDelta(t, 0, f.Dot(r), 1e-12)
	assert.InDelta(t, 0, f.Dot(u), 1e-12)
	assert.InDelta(t, 0, r.Dot(u), 1e-12)
}

func TestProjectCenterAndSides(t *testing.T) {
	c := newTestCamera()
	w, h := 1280.0, 800.0

	x, y, depth, ok := c.Project(geom.V(0, 10, -50), w, h)
	assert.True(t, ok)
	assert.InDelta(t, w/2, x, 1e-9)
	assert.InDelta(t, h/2, y, 1e-9)
	assert.InDelta(t, 50, depth, 1e-9)

	// a point right of the view axis lands right of center, above lands higher
	x, y, _, ok = c.Project(geom.V(5, 15, -50), w, h)
	assert.True(t, ok)
	assert.Greater(t, x, w/2)
	assert.Less(t, y, h/2)

	// the top edge of the frustum maps to y = 0
	top := 50 * math.Tan(75*math.Pi/360)
	_, y, _, ok = c.Project(geom.V(0, 10+top, -50), w, h)
	assert.True(t, ok)
	assert.InDelta(t, 0, y, 1e-6)
}

func TestProjectRejectsBehindAndBeyondFar(t *testing.T) {
	c := newTestCamera()
	_, _, _, ok := c.Project(geom.V(0, 10, 50), 800, 600)
	assert.False(t, ok, "points behind the camera are not projected")

	_, _, _, ok = c.Project(geom.V(0, 10, -2000), 800, 600)
	assert.False(t, ok, "points beyond far are not projected")
}

func TestSetAspectIsIdempotent(t *testing.T) {
	c := newTestCamera()
	assert.True(t, c.SetAspect(2))
	assert.False(t, c.SetAspect(2))
	assert.Equal(t, 2.0, c.Aspect)
	assert.False(t, c.SetAspect(0), "non-positive aspect is ignored")
}

func TestCenterRayFollowsYaw(t *testing.T) {
	c := newTestCamera()
	c.Yaw = math.Pi / 2 // turned left, now facing -X

	r := c.CenterRay()
	p := r.At(10)
	assert.InDelta(t, -10, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)
	assert.InDelta(t, 0, p.Z, 1e-9)
}
