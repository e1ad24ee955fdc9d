package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/gallery/internal/camera"
	"chosenoffset.com/gallery/internal/core/geom"
	"chosenoffset.com/gallery/internal/entity"
	"chosenoffset.com/gallery/internal/render/rendertest"
	"chosenoffset.com/gallery/internal/texture"
)

func testConfig() Config {
	return Config{
		FloorSize:     2000,
		FloorSegments: 40,
		TextureRepeat: 10,
		FogDensity:    0.0025,
		Background:    color.RGBA{0, 0, 0, 255},
		EnemyScale:    20,
	}
}

func newTestScene() *Scene {
	return New(testConfig(), rendertest.NewImage(64, 64), rendertest.NewImage(texture.EnemySize, texture.EnemySize))
}

func newTestCamera() *camera.Camera {
	c := camera.New(75, 800.0/600.0, 1, 1000)
	c.Position = geom.V(0, 10, 0)
	return c
}

func TestFogFactor(t *testing.T) {
	assert.Equal(t, 0.0, FogFactor(0.0025, 0))
	assert.InDelta(t, 1-math.Exp(-1), FogFactor(0.0025, 400), 1e-12)
	assert.Greater(t, FogFactor(0.0025, 1000), 0.99)
	assert.Less(t, FogFactor(0.0025, 100), FogFactor(0.0025, 200))
}

func TestClipNearKeepsPolygonInFront(t *testing.T) {
	poly := []clipVertex{
		{view: geom.V(-1, 0, 5)},
		{view: geom.V(1, 0, 5)},
		{view: geom.V(1, 0, 10)},
	}
	out := clipNear(nil, poly, 1)
	assert.Len(t, out, 3)
}

func TestClipNearDropsPolygonBehind(t *testing.T) {
	poly := []clipVertex{
		{view: geom.V(-1, 0, -5)},
		{view: geom.V(1, 0, -5)},
		{view: geom.V(0, 0, 0.5)},
	}
	assert.Empty(t, clipNear(nil, poly, 1))
}

func TestClipNearSplitsStraddlingQuad(t *testing.T) {
	// square straddling the near plane: two corners behind, two in front
	poly := []clipVertex{
		{view: geom.V(-1, -1, -1), u: 0, v: 0},
		{view: geom.V(1, -1, -1), u: 10, v: 0},
		{view: geom.V(1, -1, 3), u: 10, v: 10},
		{view: geom.V(-1, -1, 3), u: 0, v: 10},
	}
	out := clipNear(nil, poly, 1)
	require.Len(t, out, 4)
	for _, cv := range out {
		assert.GreaterOrEqual(t, cv.view.Z, 1.0-1e-12)
	}
	// the new corners sit halfway along the edges, so v is interpolated to 5
	var onPlane int
	for _, cv := range out {
		if math.Abs(cv.view.Z-1) < 1e-12 {
			onPlane++
			assert.InDelta(t, 5, cv.v, 1e-12)
		}
	}
	assert.Equal(t, 2, onPlane)
}

func TestOutsideFrustum(t *testing.T) {
	cam := newTestCamera()
	visible := []clipVertex{{view: geom.V(0, 0, 10)}, {view: geom.V(1, 0, 10)}, {view: geom.V(0, 1, 10)}}
	assert.False(t, outsideFrustum(visible, cam, 1))

	farLeft := []clipVertex{{view: geom.V(-100, 0, 10)}, {view: geom.V(-90, 0, 10)}, {view: geom.V(-95, 1, 12)}}
	assert.True(t, outsideFrustum(farLeft, cam, 1))

	behind := []clipVertex{{view: geom.V(0, 0, -10)}, {view: geom.V(1, 0, -10)}, {view: geom.V(0, 1, -12)}}
	assert.True(t, outsideFrustum(behind, cam, 1))
}

func TestDrawRendersFloorAndSprites(t *testing.T) {
	s := newTestScene()
	cam := newTestCamera()
	dst := rendertest.NewImage(800, 600)

	enemies := []*entity.Enemy{
		entity.NewEnemy(geom.V(0, 10, -100)),
		entity.NewEnemy(geom.V(5, 10, -300)),
		entity.NewEnemy(geom.V(0, 10, 200)), // behind the camera
	}
	s.Draw(dst, cam, enemies)

	require.NotEmpty(t, dst.Fills)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, dst.Fills[0], "background is cleared first")
	assert.Positive(t, dst.Triangles, "floor should be drawn")
	assert.Equal(t, 2, dst.DrawImages)
	assert.Equal(t, 2, s.VisibleSprites())

	// the nearest sprite is drawn last and is the least fogged
	require.NotNil(t, dst.LastColorScale)
	want := float32(1 - FogFactor(0.0025, 100))
	assert.InDelta(t, want, dst.LastColorScale.R, 1e-6)
	assert.Equal(t, float32(1), dst.LastColorScale.A)
}

func TestDrawSortsSpritesFarToNear(t *testing.T) {
	s := newTestScene()
	cam := newTestCamera()
	dst := rendertest.NewImage(800, 600)

	s.Draw(dst, cam, []*entity.Enemy{
		entity.NewEnemy(geom.V(0, 10, -50)),
		entity.NewEnemy(geom.V(0, 10, -350)),
		entity.NewEnemy(geom.V(0, 10, -150)),
	})
	require.Len(t, s.sprites, 3)
	assert.Equal(t, 350.0, s.sprites[0].depth)
	assert.Equal(t, 150.0, s.sprites[1].depth)
	assert.Equal(t, 50.0, s.sprites[2].depth)
}

func TestLookingAtSkyDrawsNoFloor(t *testing.T) {
	s := newTestScene()
	cam := newTestCamera()
	cam.Pitch = math.Pi / 2
	dst := rendertest.NewImage(800, 600)

	s.Draw(dst, cam, nil)
	assert.Zero(t, dst.Triangles)
}
