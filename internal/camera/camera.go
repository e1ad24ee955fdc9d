// Package camera implements a yaw/pitch perspective camera.
//
// World axes follow the usual right-handed convention with Y up. At yaw 0 and
// pitch 0 the camera looks down -Z. View-space depth is positive in front of
// the camera.
package camera

import (
	"math"

	"chosenoffset.com/gallery/internal/core/geom"
)

// Camera is a perspective camera with a vertical field of view.
type Camera struct {
	FOV    float64 // vertical field of view in degrees
	Aspect float64 // viewport width / height
	Near   float64
	Far    float64

	Position geom.Vec3
	Yaw      float64 // rotation about +Y in radians
	Pitch    float64 // rotation about the camera's right axis in radians

	// projection cache, rebuilt by UpdateProjection
	tanHalfFOV float64
}

// New creates a camera and computes its projection.
func New(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes cached projection terms after FOV or Aspect change.
func (c *Camera) UpdateProjection() {
	c.tanHalfFOV = math.Tan(c.FOV * math.Pi / 360)
}

// SetAspect updates the aspect ratio and projection. It reports whether anything changed.
func (c *Camera) SetAspect(aspect float64) bool {
	if aspect <= 0 || aspect == c.Aspect {
		return false
	}
	c.Aspect = aspect
	c.UpdateProjection()
	return true
}

// Forward returns the unit view direction.
func (c *Camera) Forward() geom.Vec3 {
	cp := math.Cos(c.Pitch)
	return geom.V(
		-math.Sin(c.Yaw)*cp,
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw)*cp,
	)
}

// Right returns the unit right vector. It is always horizontal.
func (c *Camera) Right() geom.Vec3 {
	return geom.V(math.Cos(c.Yaw), 0, -math.Sin(c.Yaw))
}

// Up returns the camera's unit up vector.
func (c *Camera) Up() geom.Vec3 {
	return c.Right().Cross(c.Forward())
}

// ToView transforms a world point into view space: x right, y up, z depth.
func (c *Camera) ToView(p geom.Vec3) geom.Vec3 {
	d := p.Sub(c.Position)
	return geom.V(d.Dot(c.Right()), d.Dot(c.Up()), d.Dot(c.Forward()))
}

// FocalLength returns the distance from the eye to the image plane, in
// pixels, for a viewport of the given height.
func (c *Camera) FocalLength(viewportHeight float64) float64 {
	return viewportHeight / 2 / c.tanHalfFOV
}

// ProjectView maps a view-space point to screen coordinates in a
// width×height viewport. ok is false outside the near/far range.
func (c *Camera) ProjectView(v geom.Vec3, width, height float64) (x, y float64, ok bool) {
	if v.Z < c.Near || v.Z > c.Far {
		return 0, 0, false
	}
	f := c.FocalLength(height)
	x = width/2 + v.X/v.Z*f
	y = height/2 - v.Y/v.Z*f
	return x, y, true
}

// Project maps a world point to screen coordinates and returns its view depth.
func (c *Camera) Project(p geom.Vec3, width, height float64) (x, y, depth float64, ok bool) {
	v := c.ToView(p)
	x, y, ok = c.ProjectView(v, width, height)
	return x, y, v.Z, ok
}

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin    geom.Vec3
	Direction geom.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) geom.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// CenterRay returns the ray from the eye through the center of the view.
func (c *Camera) CenterRay() Ray {
	return Ray{Origin: c.Position, Direction: c.Forward()}
}
