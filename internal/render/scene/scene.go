// Package scene draws the 3D gallery: a textured floor plane and billboard
// enemies seen through a perspective camera, faded into exponential fog.
package scene

import (
	"image/color"
	"math"
	"slices"

	"chosenoffset.com/gallery/internal/camera"
	"chosenoffset.com/gallery/internal/core/geom"
	"chosenoffset.com/gallery/internal/entity"
	"chosenoffset.com/gallery/internal/render"
)

// Config describes the static parts of the scene.
type Config struct {
	FloorSize     float64
	FloorSegments int
	TextureRepeat float64
	FogDensity    float64
	Background    color.RGBA
	EnemyScale    float64
}

// Scene owns the GPU textures and the floor mesh.
type Scene struct {
	cfg      Config
	floorTex render.Image
	enemyTex render.Image
	texW     float64 // floor texture size in pixels
	texH     float64

	floor []floorVertex
	cells int

	// reused per-frame buffers
	vertices []render.Vertex
	indices  []uint16
	sprites  []sprite
}

type floorVertex struct {
	pos  geom.Vec3
	u, v float64
}

type sprite struct {
	x, y, size float64
	depth      float64
}

// New builds the floor mesh for the given textures. The scene takes
// ownership of both images.
func New(cfg Config, floor, enemy render.Image) *Scene {
	fw, fh := floor.Size()
	s := &Scene{
		cfg:      cfg,
		floorTex: floor,
		enemyTex: enemy,
		texW:     float64(fw),
		texH:     float64(fh),
	}
	s.buildFloor()
	return s
}

// buildFloor lays out a (segments+1)² vertex grid on the XZ plane centered on
// the origin. Texture coordinates run past the texture edge so that repeat
// addressing tiles the checkerboard TextureRepeat times per edge.
func (s *Scene) buildFloor() {
	n := s.cfg.FloorSegments
	s.cells = n
	s.floor = make([]floorVertex, 0, (n+1)*(n+1))
	half := s.cfg.FloorSize / 2
	step := s.cfg.FloorSize / float64(n)
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			fu := float64(i) / float64(n)
			fv := float64(j) / float64(n)
			s.floor = append(s.floor, floorVertex{
				pos: geom.V(-half+float64(i)*step, 0, -half+float64(j)*step),
				u:   fu * s.cfg.TextureRepeat * s.texW,
				v:   fv * s.cfg.TextureRepeat * s.texH,
			})
		}
	}
}

// Dispose releases the scene's textures.
func (s *Scene) Dispose() {
	s.floorTex.Dispose()
	s.enemyTex.Dispose()
}

// FogFactor returns how much of the fog color replaces a surface at the
// given view depth: 1 - exp(-(density·depth)²).
func FogFactor(density, depth float64) float64 {
	d := density * depth
	return 1 - math.Exp(-d*d)
}

// Draw renders the scene into dst from cam.
func (s *Scene) Draw(dst render.Image, cam *camera.Camera, enemies []*entity.Enemy) {
	dst.Fill(s.cfg.Background)

	w, h := dst.Size()
	s.drawFloor(dst, cam, float64(w), float64(h))
	s.drawSprites(dst, cam, enemies, float64(w), float64(h))
}

func (s *Scene) drawFloor(dst render.Image, cam *camera.Camera, w, h float64) {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	n := s.cells
	var poly, clipped []clipVertex
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			corners := [4]int{
				j*(n+1) + i,
				j*(n+1) + i + 1,
				(j+1)*(n+1) + i + 1,
				(j+1)*(n+1) + i,
			}
			poly = poly[:0]
			for _, c := range corners {
				fv := s.floor[c]
				poly = append(poly, clipVertex{view: cam.ToView(fv.pos), u: fv.u, v: fv.v})
			}
			if outsideFrustum(poly, cam, w/h) {
				continue
			}
			clipped = clipNear(clipped[:0], poly, cam.Near)
			if len(clipped) < 3 {
				continue
			}
			if len(s.vertices)+len(clipped) > math.MaxUint16 {
				s.flushFloor(dst)
			}
			s.emitPolygon(cam, clipped, w, h)
		}
	}
	s.flushFloor(dst)
}

func (s *Scene) flushFloor(dst render.Image) {
	if len(s.indices) == 0 {
		return
	}
	dst.DrawTriangles(s.vertices, s.indices, s.floorTex, &render.DrawTrianglesOptions{
		Address: render.AddressRepeat,
		Filter:  render.FilterLinear,
	})
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

// emitPolygon projects a convex polygon already clipped to the near plane
// and appends it as a triangle fan.
func (s *Scene) emitPolygon(cam *camera.Camera, poly []clipVertex, w, h float64) {
	base := uint16(len(s.vertices))
	focal := cam.FocalLength(h)
	for _, cv := range poly {
		// the floor extends past Far, so project without the far test
		x := w/2 + cv.view.X/cv.view.Z*focal
		y := h/2 - cv.view.Y/cv.view.Z*focal
		shade := float32(1 - FogFactor(s.cfg.FogDensity, cv.view.Z))
		s.vertices = append(s.vertices, render.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   float32(cv.u),
			SrcY:   float32(cv.v),
			ColorR: shade,
			ColorG: shade,
			ColorB: shade,
			ColorA: 1,
		})
	}
	for k := 1; k+1 < len(poly); k++ {
		s.indices = append(s.indices, base, base+uint16(k), base+uint16(k+1))
	}
}

// drawSprites draws enemies as screen-aligned billboards, farthest first.
func (s *Scene) drawSprites(dst render.Image, cam *camera.Camera, enemies []*entity.Enemy, w, h float64) {
	s.sprites = s.sprites[:0]
	focal := cam.FocalLength(h)
	for _, e := range enemies {
		v := cam.ToView(e.Pos)
		x, y, ok := cam.ProjectView(v, w, h)
		if !ok {
			continue
		}
		size := s.cfg.EnemyScale * focal / v.Z
		if x+size/2 < 0 || x-size/2 > w || y+size/2 < 0 || y-size/2 > h {
			continue
		}
		s.sprites = append(s.sprites, sprite{x: x, y: y, size: size, depth: v.Z})
	}

	slices.SortFunc(s.sprites, func(a, b sprite) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})

	texW, _ := s.enemyTex.Size()
	for _, sp := range s.sprites {
		shade := float32(1 - FogFactor(s.cfg.FogDensity, sp.depth))
		geoM := render.NewGeoM()
		geoM.Scale(sp.size/float64(texW), sp.size/float64(texW))
		geoM.Translate(sp.x-sp.size/2, sp.y-sp.size/2)
		dst.DrawImage(s.enemyTex, &render.DrawImageOptions{
			GeoM:       geoM,
			ColorScale: &render.ColorScale{R: shade, G: shade, B: shade, A: 1},
			Filter:     render.FilterLinear,
		})
	}
}

// VisibleSprites returns how many enemies the last Draw rendered.
func (s *Scene) VisibleSprites() int {
	return len(s.sprites)
}
