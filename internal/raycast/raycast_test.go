package raycast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/gallery/internal/camera"
	"chosenoffset.com/gallery/internal/core/geom"
	"chosenoffset.com/gallery/internal/entity"
)

func newCamera() *camera.Camera {
	c := camera.New(75, 1, 1, 1000)
	c.Position = geom.V(0, 10, 0)
	return c
}

func TestNearestPicksClosestOnAxis(t *testing.T) {
	cam := newCamera()
	far := entity.NewEnemy(geom.V(0, 10, -300))
	near := entity.NewEnemy(geom.V(2, 12, -150))
	off := entity.NewEnemy(geom.V(50, 10, -100))

	hits := Intersect(cam.CenterRay(), cam, []*entity.Enemy{far, off, near}, 20)
	require.Len(t, hits, 2)
	assert.Same(t, near, hits[0].Enemy)
	assert.Same(t, far, hits[1].Enemy)
	assert.InDelta(t, 150, hits[0].Distance, 1e-9)

	hit, ok := Nearest(cam.CenterRay(), cam, []*entity.Enemy{far, off, near}, 20)
	require.True(t, ok)
	assert.Same(t, near, hit.Enemy)
}

func TestSpriteEdgeIsInclusive(t *testing.T) {
	cam := newCamera()
	edge := entity.NewEnemy(geom.V(10, 10, -100))
	outside := entity.NewEnemy(geom.V(10.01, 10, -100))

	hits := Intersect(cam.CenterRay(), cam, []*entity.Enemy{edge, outside}, 20)
	require.Len(t, hits, 1)
	assert.Same(t, edge, hits[0].Enemy)
}

func TestEnemiesBehindAreNotHit(t *testing.T) {
	cam := newCamera()
	behind := entity.NewEnemy(geom.V(0, 10, 100))

	_, ok := Nearest(cam.CenterRay(), cam, []*entity.Enemy{behind}, 20)
	assert.False(t, ok)
}

func TestBillboardFacesCameraWhenTurned(t *testing.T) {
	cam := newCamera()
	cam.Yaw = math.Pi / 2 // facing -X
	cam.Pitch = 0.2

	target := entity.NewEnemy(cam.CenterRay().At(200))
	decoy := entity.NewEnemy(geom.V(0, 10, -200))

	hit, ok := Nearest(cam.CenterRay(), cam, []*entity.Enemy{decoy, target}, 20)
	require.True(t, ok)
	assert.Same(t, target, hit.Enemy)
	assert.InDelta(t, 200, hit.Distance, 1e-9)
}

func TestNoEnemies(t *testing.T) {
	cam := newCamera()
	assert.Empty(t, Intersect(cam.CenterRay(), cam, nil, 20))
}
