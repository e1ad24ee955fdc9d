package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := V(3, 0, 4).Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Z, 1e-12)

	assert.Equal(t, Vec3{}, Vec3{}.Normalize(), "zero vector should stay zero")
}

func TestDistanceTo(t *testing.T) {
	a := V(1, 2, 3)
	b := V(4, 6, 3)
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-12)
	assert.InDelta(t, a.DistanceTo(b), b.DistanceTo(a), 1e-12)
}

func TestCross(t *testing.T) {
	x := V(1, 0, 0)
	y := V(0, 1, 0)
	assert.Equal(t, V(0, 0, 1), x.Cross(y))
	assert.Equal(t, V(0, 0, -1), y.Cross(x))
}

func TestLerp(t *testing.T) {
	a := V(0, 0, 0)
	b := V(10, -10, 2)
	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 5.0, mid.X, 1e-12)
	assert.InDelta(t, -5.0, mid.Y, 1e-12)
	assert.InDelta(t, 1.0, mid.Z, 1e-12)
	assert.False(t, math.IsNaN(a.Lerp(b, 0).X))
}
