// Package raycast finds enemy sprites along a ray.
package raycast

import (
	"math"
	"slices"

	"chosenoffset.com/gallery/internal/camera"
	"chosenoffset.com/gallery/internal/core/geom"
	"chosenoffset.com/gallery/internal/entity"
)

// Hit is one ray/sprite intersection.
type Hit struct {
	Enemy    *entity.Enemy
	Distance float64
	Point    geom.Vec3
}

// Intersect tests ray against every enemy drawn as a camera-facing square
// with edge length size, and returns the hits ordered nearest first.
// Hits behind the ray origin are ignored.
func Intersect(ray camera.Ray, cam *camera.Camera, enemies []*entity.Enemy, size float64) []Hit {
	right, up := cam.Right(), cam.Up()
	normal := cam.Forward()
	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < 1e-12 {
		return nil
	}

	half := size / 2
	var hits []Hit
	for _, e := range enemies {
		t := e.Pos.Sub(ray.Origin).Dot(normal) / denom
		if t <= 0 {
			continue
		}
		p := ray.At(t)
		offset := p.Sub(e.Pos)
		if math.Abs(offset.Dot(right)) > half || math.Abs(offset.Dot(up)) > half {
			continue
		}
		hits = append(hits, Hit{Enemy: e, Distance: t, Point: p})
	}

	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// Nearest returns the closest hit along ray, if any.
func Nearest(ray camera.Ray, cam *camera.Camera, enemies []*entity.Enemy, size float64) (Hit, bool) {
	hits := Intersect(ray, cam, enemies, size)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}
