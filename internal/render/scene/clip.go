package scene

import (
	"math"

	"chosenoffset.com/gallery/internal/camera"
	"chosenoffset.com/gallery/internal/core/geom"
)

// clipVertex is a view-space polygon corner with its texture coordinate.
type clipVertex struct {
	view geom.Vec3
	u, v float64
}

func (a clipVertex) lerp(b clipVertex, t float64) clipVertex {
	return clipVertex{
		view: a.view.Lerp(b.view, t),
		u:    a.u + (b.u-a.u)*t,
		v:    a.v + (b.v-a.v)*t,
	}
}

// clipNear clips a convex polygon to the half-space z >= near
// (Sutherland–Hodgman against one plane) and appends the result to dst.
func clipNear(dst, poly []clipVertex, near float64) []clipVertex {
	if len(poly) == 0 {
		return dst
	}
	prev := poly[len(poly)-1]
	prevIn := prev.view.Z >= near
	for _, cur := range poly {
		curIn := cur.view.Z >= near
		if curIn != prevIn {
			t := (near - prev.view.Z) / (cur.view.Z - prev.view.Z)
			dst = append(dst, prev.lerp(cur, t))
		}
		if curIn {
			dst = append(dst, cur)
		}
		prev, prevIn = cur, curIn
	}
	return dst
}

// outsideFrustum reports whether every corner lies outside the same
// frustum plane, so the polygon cannot be visible. The side planes pass
// through the eye, so the tests hold for corners behind the camera too.
func outsideFrustum(poly []clipVertex, cam *camera.Camera, aspect float64) bool {
	tanV := math.Tan(cam.FOV * math.Pi / 360)
	tanH := tanV * aspect

	var left, right, below, above, behind int
	for _, cv := range poly {
		p := cv.view
		if p.Z < cam.Near {
			behind++
		}
		if p.X < -p.Z*tanH {
			left++
		}
		if p.X > p.Z*tanH {
			right++
		}
		if p.Y < -p.Z*tanV {
			below++
		}
		if p.Y > p.Z*tanV {
			above++
		}
	}
	n := len(poly)
	return behind == n || left == n || right == n || below == n || above == n
}
